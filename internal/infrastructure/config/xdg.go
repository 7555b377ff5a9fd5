package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "dumbhint"
	configFileName = "config.toml"
	schemaFileName = "config.schema.json"

	dirPerm  = 0o755
	filePerm = 0o644
)

// GetConfigDir returns the config directory for dumbhint:
// $DUMBHINT_CONFIG_DIR, else $XDG_CONFIG_HOME/dumbhint (default ~/.config/dumbhint).
// With ENV=dev it is .dev/dumbhint in the working directory.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("DUMBHINT_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the default config file path.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
