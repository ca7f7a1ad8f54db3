package models

// UserRecord bundles everything stored for one registered username:
// the credential, the todo list, and the id counter for new todos.
//
// Password is stored in plaintext and compared by exact equality at login.
// This mirrors the behavior of the system this tool replaces and is a known
// weakness; do not reuse the scheme anywhere real secrets are involved.
type UserRecord struct {
	Password string     `json:"password"`
	Todos    []TodoItem `json:"todos"`
	NextID   int64      `json:"nextId"`
}

// UserTable maps username to its record. The whole table is serialized as a
// single value under the "users" storage key and written back in full on
// every mutation (write-through, no deltas).
type UserTable map[string]*UserRecord
