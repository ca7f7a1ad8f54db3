package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "todos.db", c.DatabasePath)
	assert.Equal(t, "backup", c.BackupDir)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "todos.db", cfg.DatabasePath)
	assert.Equal(t, "backup", cfg.BackupDir)
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"database_path": "from-json.db",
		"backup_dir":    "json-backup",
	})

	os.Args = []string{"testbin", "-config", path, "-d", "from-flags.db"}

	cfg := LoadConfig()
	assert.Equal(t, "from-flags.db", cfg.DatabasePath)
	assert.Equal(t, "json-backup", cfg.BackupDir)
}
