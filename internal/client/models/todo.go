// Package models defines client-side data models used by the gophtodo CLI.
package models

// TodoItem is a single task in a user's list. Items keep their insertion
// order; that order is the display order.
type TodoItem struct {
	// ID is unique within one user's list, allocated from that user's
	// counter and never reused or reassigned. IDs are not unique across
	// users.
	ID int64 `json:"id"`

	// Text is the short task line. Required, trimmed before storing.
	Text string `json:"text"`

	// Description is an optional longer body, empty by default.
	Description string `json:"description"`

	// Completed is business state and survives restarts.
	Completed bool `json:"completed"`

	// Expanded is view state only: whether the description is currently
	// unfolded. It is excluded from serialization on purpose, so every
	// restart begins with descriptions collapsed.
	Expanded bool `json:"-"`
}
