package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dumbhint/internal/domain/entity"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "warning": true,
	"error": true, "disabled": true, "off": true,
}

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateHints(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateQueue(config)...)
	validationErrors = append(validationErrors, validateDBus(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

// Validate checks a configuration without loading it.
func Validate(config *Config) error {
	if config == nil {
		return errors.New("config is nil")
	}
	return validateConfig(config)
}

func validateHints(config *Config) []string {
	_, err := config.Settings()
	if err == nil {
		return nil
	}
	if !errors.Is(err, entity.ErrInvalidSettings) {
		return []string{"hints: " + err.Error()}
	}
	// Settings errors are a header line followed by "  - problem" lines.
	var out []string
	for _, line := range strings.Split(err.Error(), "\n")[1:] {
		line = strings.TrimPrefix(strings.TrimSpace(line), "- ")
		if line != "" {
			out = append(out, "hints: "+line)
		}
	}
	return out
}

func validateLogging(config *Config) []string {
	if config.Logging.Level != "" && !validLogLevels[config.Logging.Level] {
		return []string{fmt.Sprintf("logging.level %q is not one of trace, debug, info, warn, error, disabled", config.Logging.Level)}
	}
	return nil
}

func validateQueue(config *Config) []string {
	if config.Queue.Capacity < 1 {
		return []string{"queue.capacity must be at least 1"}
	}
	return nil
}

func validateDBus(config *Config) []string {
	var validationErrors []string
	if name := config.DBus.BusName; name != "" && (!strings.Contains(name, ".") || strings.HasPrefix(name, ".")) {
		validationErrors = append(validationErrors, fmt.Sprintf("dbus.bus_name %q must be a dotted well-known name", name))
	}
	if path := config.DBus.ObjectPath; path != "" && !strings.HasPrefix(path, "/") {
		validationErrors = append(validationErrors, fmt.Sprintf("dbus.object_path %q must start with /", path))
	}
	return validationErrors
}
