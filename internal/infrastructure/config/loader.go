package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/dumbhint/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	loadedFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a configuration manager. An empty configFile searches
// config.toml in the config directory, then the working directory.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("toml")
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	// DUMBHINT_HINTS_ALPHABET, DUMBHINT_QUEUE_CAPACITY, ...
	v.SetEnvPrefix("DUMBHINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DUMBHINT_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBHINT_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DUMBHINT_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBHINT_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load reads defaults, the config file (if any) and the environment,
// then validates the result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		m.loadedFile = m.viper.ConfigFileUsed()
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		// Defaults and environment only.
		return nil
	}
	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configFile = m.configFile
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Hints.Alphabet = strings.TrimSpace(config.Hints.Alphabet)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}
	if config.DBus.BusName == "" {
		config.DBus.BusName = DefaultBusName
	}
	if config.DBus.ObjectPath == "" {
		config.DBus.ObjectPath = DefaultObjectPath
	}
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("hints.alphabet", defaults.Hints.Alphabet)
	m.viper.SetDefault("hints.auto_accept_unique_hint", defaults.Hints.AutoAcceptUniqueHint)
	m.viper.SetDefault("hints.accepted_highlight_ms", defaults.Hints.AcceptedHighlightMS)
	m.viper.SetDefault("hints.passthrough_keyboard_input", defaults.Hints.PassthroughKeyboardInput)
	m.viper.SetDefault("hints.bindings.activatable", defaults.Hints.Bindings.Activatable)
	m.viper.SetDefault("hints.bindings.editable", defaults.Hints.Bindings.Editable)
	m.viper.SetDefault("hints.bindings.focusable", defaults.Hints.Bindings.Focusable)
	m.viper.SetDefault("hints.bindings.yankable", defaults.Hints.Bindings.Yankable)
	m.viper.SetDefault("hints.bindings.menuable", defaults.Hints.Bindings.Menuable)
	m.viper.SetDefault("hints.bindings.contextable", defaults.Hints.Bindings.Contextable)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("queue.capacity", defaults.Queue.Capacity)

	m.viper.SetDefault("dbus.bus_name", defaults.DBus.BusName)
	m.viper.SetDefault("dbus.object_path", defaults.DBus.ObjectPath)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Settings returns the engine settings of the current configuration.
func (m *Manager) Settings() (entity.Settings, error) {
	return m.Get().Settings()
}

// ConfigFileUsed returns the file the configuration was read from, if any.
func (m *Manager) ConfigFileUsed() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loadedFile
}
