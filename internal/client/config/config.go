package config

// Config holds runtime settings for the gophtodo CLI.
//
// Fields:
//   - DatabasePath: path of the local SQLite file holding the user table
//     and the session marker.
//   - BackupDir: directory (relative to the working directory) used by the
//     backup/restore commands.
type Config struct {
	DatabasePath string
	BackupDir    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "todos.db"
	c.BackupDir = "backup"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
