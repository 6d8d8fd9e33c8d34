package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnlang"

	// ProjectConfigFile is the config file looked up in the root directory
	// when no config file is given explicitly.
	ProjectConfigFile = "gnlang.yaml"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnlang by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnlang/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the reference config.yaml file.
// Returns ~/.config/gnlang/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
