package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophtodo/internal/common"
)

// chdirTemp points the working directory at a throwaway location so the
// backup dir lands there.
func chdirTemp(t *testing.T) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })
	require.NoError(t, os.Chdir(t.TempDir()))
}

func TestBackup_ExportImportRoundTrip(t *testing.T) {
	chdirTemp(t)

	_, auth, todo := setupTodo(t)
	ctx := context.Background()

	_, err := todo.Add(ctx, "buy milk", "2 liters")
	require.NoError(t, err)
	second, err := todo.Add(ctx, "call mom", "")
	require.NoError(t, err)
	require.NoError(t, todo.ToggleCompleted(ctx, second.ID))

	backup := NewBackupService(auth, "backup", newTestLogger())

	path, err := backup.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, ".json", filepath.Ext(path))
	_, err = os.Stat(path)
	require.NoError(t, err)

	// wipe the list, then restore it from the file
	require.NoError(t, todo.Delete(ctx, 1))
	require.NoError(t, todo.Delete(ctx, 2))
	require.Empty(t, todo.List())

	require.NoError(t, backup.Import(ctx, path))
	require.NoError(t, todo.Load(ctx))

	list := todo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "buy milk", list[0].Text)
	assert.Equal(t, "2 liters", list[0].Description)
	assert.False(t, list[0].Completed)
	assert.Equal(t, "call mom", list[1].Text)
	assert.True(t, list[1].Completed)

	// ids are reallocated from the counter, never reused
	assert.Equal(t, int64(3), list[0].ID)
	assert.Equal(t, int64(4), list[1].ID)
}

func TestBackup_ImportRejectsInvalidFile(t *testing.T) {
	chdirTemp(t)

	_, auth, _ := setupTodo(t)
	ctx := context.Background()
	backup := NewBackupService(auth, "backup", newTestLogger())

	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: `{ nope`},
		{name: "missing todos", content: `{"username": "alice"}`},
		{name: "todo without text", content: `{"todos": [{"id": 1}]}`},
		{name: "empty text", content: `{"todos": [{"text": ""}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			require.Error(t, backup.Import(ctx, path))
		})
	}
}

func TestBackup_RequiresSession(t *testing.T) {
	chdirTemp(t)

	_, auth := setupAuth(t)
	backup := NewBackupService(auth, "backup", newTestLogger())
	ctx := context.Background()

	_, err := backup.Export(ctx)
	require.ErrorIs(t, err, common.ErrNoSession)

	err = backup.Import(ctx, "whatever.json")
	require.ErrorIs(t, err, common.ErrNoSession)
}
