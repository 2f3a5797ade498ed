// Package models defines the data structures persisted by the shell.
package models

// DaemonConfig controls where the daemon binary is looked up.
type DaemonConfig struct {
	Path       string `yaml:"path"`        // Absolute binary path; empty = resolve under InstallDir
	InstallDir string `yaml:"install_dir"` // Empty = directory of the shell executable
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
	File  bool   `yaml:"file"`  // Also write to ~/.sumo/logs/shell.log
}

// Settings represents the shell settings.
// This corresponds to ~/.sumo/settings.yaml.
type Settings struct {
	Version int           `yaml:"version"`
	Daemon  DaemonConfig  `yaml:"daemon"`
	Logging LoggingConfig `yaml:"logging"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Daemon: DaemonConfig{
			Path:       "",
			InstallDir: "",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  true,
		},
	}
}
