package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
)

// TodoService manages the current user's todo list: CRUD plus the two
// toggles, with every business mutation written through the credential
// store. ToggleExpanded is the exception: it is view state and is never
// persisted, so a restart always starts with descriptions collapsed.
//
// The service also tracks which item is in edit mode. A single field holds
// the target, so at most one item can be edited at a time.
type TodoService interface {
	// Load pulls the current user's list into memory. Call after login,
	// logout, or restore.
	Load(ctx context.Context) error

	// List returns a snapshot of the in-memory list in display order.
	List() []models.TodoItem

	// Get returns the item with the given id, if present.
	Get(id int64) (models.TodoItem, bool)

	Add(ctx context.Context, text, description string) (*models.TodoItem, error)
	Delete(ctx context.Context, id int64) error
	ToggleCompleted(ctx context.Context, id int64) error
	ToggleExpanded(id int64) bool

	StartEdit(id int64)
	CancelEdit()
	EditingID() (int64, bool)
	SaveEdit(ctx context.Context, id int64, text, description string) error
}

type todoService struct {
	auth   AuthService
	logger logging.Logger

	todos []models.TodoItem

	// editingID marks the single item currently in edit mode; 0 means none.
	editingID int64
}

// NewTodoService constructs a TodoService operating on whichever user the
// credential store considers logged in.
func NewTodoService(auth AuthService, logger logging.Logger) TodoService {
	return &todoService{auth: auth, logger: logger.With("component", "todo")}
}

func (s *todoService) Load(ctx context.Context) error {
	todos, err := s.auth.UserTodos(ctx)
	if err != nil {
		return err
	}
	s.todos = todos
	s.editingID = 0
	return nil
}

func (s *todoService) List() []models.TodoItem {
	out := make([]models.TodoItem, len(s.todos))
	copy(out, s.todos)
	return out
}

func (s *todoService) Get(id int64) (models.TodoItem, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.todos[i], true
	}
	return models.TodoItem{}, false
}

func (s *todoService) indexOf(id int64) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}

// Add appends a new item with a freshly allocated id to the end of the
// list and persists. Text that trims to empty is rejected with
// common.ErrValidation and the list is left untouched.
func (s *todoService) Add(ctx context.Context, text, description string) (*models.TodoItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrValidation
	}

	id, err := s.auth.NextID(ctx)
	if err != nil {
		return nil, err
	}

	item := models.TodoItem{
		ID:          id,
		Text:        text,
		Description: strings.TrimSpace(description),
	}

	s.todos = append(s.todos, item)
	if err := s.auth.SaveTodos(ctx, s.todos); err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "todo added", "id", id)
	return &item, nil
}

// Delete removes the item with the given id. An absent id leaves the list
// unchanged; the (possibly identical) list is persisted either way.
func (s *todoService) Delete(ctx context.Context, id int64) error {
	filtered := s.todos[:0:0]
	for _, item := range s.todos {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	s.todos = filtered
	return s.auth.SaveTodos(ctx, s.todos)
}

// ToggleCompleted flips the completion flag and persists. A no-op for an
// unknown id.
func (s *todoService) ToggleCompleted(ctx context.Context, id int64) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.todos[i].Completed = !s.todos[i].Completed
	return s.auth.SaveTodos(ctx, s.todos)
}

// ToggleExpanded flips the description-visibility flag in memory only and
// reports whether the item exists. Deliberately not persisted.
func (s *todoService) ToggleExpanded(id int64) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.todos[i].Expanded = !s.todos[i].Expanded
	return true
}

func (s *todoService) StartEdit(id int64) {
	s.editingID = id
}

func (s *todoService) CancelEdit() {
	s.editingID = 0
}

func (s *todoService) EditingID() (int64, bool) {
	return s.editingID, s.editingID != 0
}

// SaveEdit overwrites text and description (both trimmed) of the item with
// the given id, persists, and leaves edit mode. An unknown id changes
// nothing — including the edit target, which stays set.
//
// An empty trimmed text is accepted here, unlike Add. Observed behavior of
// the original, kept as-is.
func (s *todoService) SaveEdit(ctx context.Context, id int64, text, description string) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	s.todos[i].Text = strings.TrimSpace(text)
	s.todos[i].Description = strings.TrimSpace(description)

	if err := s.auth.SaveTodos(ctx, s.todos); err != nil {
		return err
	}

	s.editingID = 0
	return nil
}
