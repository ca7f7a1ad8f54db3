package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/filex"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
)

// backupSchema describes the on-disk backup format. Import refuses files
// that do not validate, so a truncated or hand-mangled backup fails up
// front instead of half-replacing a list.
const backupSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["todos"],
  "properties": {
    "username": { "type": "string" },
    "todos": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "id": { "type": "integer" },
          "text": { "type": "string", "minLength": 1 },
          "description": { "type": "string" },
          "completed": { "type": "boolean" }
        }
      }
    }
  }
}`

var compiledBackupSchema = jsonschema.MustCompileString("backup.schema.json", backupSchema)

// BackupFile is the serialized form of one user's exported list.
type BackupFile struct {
	Username string            `json:"username"`
	Todos    []models.TodoItem `json:"todos"`
}

// BackupService exports the current user's todo list to a JSON file and
// restores a list from one. Both operations require an active session.
type BackupService interface {
	// Export writes the list to a fresh file in the backup directory and
	// returns its path.
	Export(ctx context.Context) (string, error)

	// Import validates the file and replaces the current user's list
	// wholesale. Ids are reallocated from the user's counter so the
	// per-user uniqueness invariant keeps holding whatever the file says.
	Import(ctx context.Context, path string) error
}

type backupService struct {
	auth      AuthService
	backupDir string
	logger    logging.Logger
}

// NewBackupService constructs a BackupService writing into backupDir
// (created on demand, relative to the working directory).
func NewBackupService(auth AuthService, backupDir string, logger logging.Logger) BackupService {
	return &backupService{auth: auth, backupDir: backupDir, logger: logger.With("component", "backup")}
}

func (s *backupService) Export(ctx context.Context) (string, error) {
	username, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	if username == "" {
		return "", common.ErrNoSession
	}

	todos, err := s.auth.UserTodos(ctx)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(BackupFile{Username: username, Todos: todos}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode backup: %w", err)
	}

	dir, err := filex.EnsureSubdDir(s.backupDir)
	if err != nil {
		return "", fmt.Errorf("error creating backup dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("todos-%s.json", uuid.NewString()))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("error writing backup file: %w", err)
	}

	s.logger.Info(ctx, "backup written", "path", path, "items", len(todos))
	return path, nil
}

func (s *backupService) Import(ctx context.Context, path string) error {
	username, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if username == "" {
		return common.ErrNoSession
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading backup file: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("backup file is not valid JSON: %w", err)
	}
	if err := compiledBackupSchema.Validate(doc); err != nil {
		return fmt.Errorf("backup file failed validation: %w", err)
	}

	var backup BackupFile
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	todos := make([]models.TodoItem, 0, len(backup.Todos))
	for _, item := range backup.Todos {
		id, err := s.auth.NextID(ctx)
		if err != nil {
			return err
		}
		item.ID = id
		item.Expanded = false
		todos = append(todos, item)
	}

	if err := s.auth.SaveTodos(ctx, todos); err != nil {
		return err
	}

	s.logger.Info(ctx, "backup restored", "path", path, "items", len(todos))
	return nil
}
