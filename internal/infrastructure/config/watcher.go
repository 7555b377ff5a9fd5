package config

import (
	"errors"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/dumbhint/internal/logging"
)

// ErrNoConfigFile is returned by Watch when no config file was loaded.
var ErrNoConfigFile = errors.New("no config file to watch")

// Watch reloads the config file whenever it changes on disk. Callbacks run
// on the watcher goroutine. An edit that fails to parse or validate keeps
// the previous config and fires no callback.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case m.watching:
		return nil
	case m.loadedFile == "":
		return ErrNoConfigFile
	}
	m.viper.OnConfigChange(m.fileChanged)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

// OnConfigChange registers fn to receive a copy of every reloaded config.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

func (m *Manager) fileChanged(e fsnotify.Event) {
	log := logging.NewFromEnv()
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

	m.mu.Lock()
	cfg, err := m.reload()
	if err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Str("file", e.Name).Msg("config reload rejected, keeping previous settings")
		return
	}
	m.config = cfg
	listeners := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	for _, fn := range listeners {
		snapshot := *cfg
		fn(&snapshot)
	}
}

// reload parses the file again without touching the current config.
// m.mu must be held.
func (m *Manager) reload() (*Config, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		return nil, err
	}
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
