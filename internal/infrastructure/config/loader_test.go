package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbhint/internal/domain/entity"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "asdfghjkl", mgr.viper.GetString("hints.alphabet"))
	assert.True(t, mgr.viper.GetBool("hints.auto_accept_unique_hint"))
	assert.Equal(t, "alt+f", mgr.viper.GetString("hints.bindings.activatable"))
	assert.Equal(t, 256, mgr.viper.GetInt("queue.capacity"))
	assert.Equal(t, DefaultBusName, mgr.viper.GetString("dbus.bus_name"))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("DUMBHINT_CONFIG_DIR", t.TempDir())

	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, DefaultConfig(), mgr.Get())
	assert.Empty(t, mgr.ConfigFileUsed())
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[hints]
alphabet = "jkl"
auto_accept_unique_hint = false
accepted_highlight_ms = 0

[hints.bindings]
activatable = "ctrl+h"
yankable = ""

[logging]
level = "DEBUG"
format = "JSON"
`)

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "jkl", cfg.Hints.Alphabet)
	assert.False(t, cfg.Hints.AutoAcceptUniqueHint)
	assert.Equal(t, "ctrl+h", cfg.Hints.Bindings.Activatable)
	assert.Equal(t, "alt+e", cfg.Hints.Bindings.Editable, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, path, mgr.ConfigFileUsed())

	settings, err := mgr.Settings()
	require.NoError(t, err)
	assert.Equal(t, []rune("jkl"), settings.Alphabet())
	_, bound := settings.Binding(entity.HintYankable)
	assert.False(t, bound)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DUMBHINT_CONFIG_DIR", t.TempDir())
	t.Setenv("DUMBHINT_HINTS_ALPHABET", "qwer")
	t.Setenv("DUMBHINT_LOG_LEVEL", "warn")
	t.Setenv("DUMBHINT_QUEUE_CAPACITY", "8")

	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "qwer", cfg.Hints.Alphabet)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 8, cfg.Queue.Capacity)
}

func TestLoad_InvalidReportsEveryProblem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[hints]
alphabet = "a"

[hints.bindings]
editable = "alt+f"

[queue]
capacity = 0
`)

	mgr, err := NewManager(path)
	require.NoError(t, err)
	err = mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
	assert.Contains(t, err.Error(), "queue.capacity")
	assert.Contains(t, err.Error(), "used by both")
	assert.Equal(t, DefaultConfig(), mgr.Get(), "failed load keeps defaults")
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[hints\nalphabet = ")

	mgr, err := NewManager(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestGet_ReturnsCopy(t *testing.T) {
	t.Setenv("DUMBHINT_CONFIG_DIR", t.TempDir())
	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	mgr.Get().Hints.Alphabet = "zz"

	assert.Equal(t, "asdfghjkl", mgr.Get().Hints.Alphabet)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hints.Alphabet = "  jkl "
	cfg.Logging.Format = "pretty"
	cfg.DBus = DBusConfig{}

	normalizeConfig(cfg)

	assert.Equal(t, "jkl", cfg.Hints.Alphabet)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, DefaultBusName, cfg.DBus.BusName)
	assert.Equal(t, DefaultObjectPath, cfg.DBus.ObjectPath)
}

func TestWatch_ReloadsAndNotifies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[hints]\nalphabet = \"asdf\"\n")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	changed := make(chan string, 8)
	mgr.OnConfigChange(func(c *Config) { changed <- c.Hints.Alphabet })
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "second Watch is a no-op")

	writeFile(t, path, "[hints]\nalphabet = \"hjkl\"\n")

	assert.Eventually(t, func() bool {
		return mgr.Get().Hints.Alphabet == "hjkl"
	}, 5*time.Second, 20*time.Millisecond)

	select {
	case got := <-changed:
		assert.Equal(t, "hjkl", got)
	case <-time.After(5 * time.Second):
		t.Fatal("callback not called")
	}
}

func TestWatch_WithoutFile(t *testing.T) {
	t.Setenv("DUMBHINT_CONFIG_DIR", t.TempDir())
	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.ErrorIs(t, mgr.Watch(), ErrNoConfigFile)
}
