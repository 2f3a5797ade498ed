package config

import (
	"os"
	"strings"

	"github.com/0xMasayoshi/sumo/internal/daemon"
	"github.com/0xMasayoshi/sumo/internal/models"
)

// Environment variables that override settings.yaml.
const (
	EnvDaemonPath = "SUMO_DAEMON_PATH"
	EnvInstallDir = "SUMO_INSTALL_DIR"
	EnvLogLevel   = "SUMO_LOG_LEVEL"
)

// LoadSettings loads the settings from ~/.sumo/settings.yaml and applies
// environment overrides. If the file doesn't exist, defaults are used.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	settings, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	ApplyEnvOverrides(settings)
	return settings, nil
}

// SaveSettings saves the settings to ~/.sumo/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// ApplyEnvOverrides copies non-empty SUMO_* variables into settings.
func ApplyEnvOverrides(settings *models.Settings) {
	if v := strings.TrimSpace(os.Getenv(EnvDaemonPath)); v != "" {
		settings.Daemon.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvInstallDir)); v != "" {
		settings.Daemon.InstallDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		settings.Logging.Level = v
	}
}

// DaemonLaunchSpec returns the daemon invocation for settings. An explicit
// daemon.path wins; otherwise the platform binary path is resolved under the
// install directory.
func DaemonLaunchSpec(settings *models.Settings) (daemon.LaunchSpec, error) {
	if settings.Daemon.Path != "" {
		return daemon.LaunchSpec{Path: settings.Daemon.Path, Args: daemon.DefaultArgs()}, nil
	}

	dir := settings.Daemon.InstallDir
	if dir == "" {
		var err error
		if dir, err = InstallDir(); err != nil {
			return daemon.LaunchSpec{}, err
		}
	}
	return daemon.DefaultLaunchSpec(dir), nil
}
