package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbhint/internal/domain/entity"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DUMBHINT_CONFIG_DIR", t.TempDir())
	configPath, configForce = "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestHintKeysHelp(t *testing.T) {
	assert.Equal(t, "alt+f/e/g/y/m/c", hintKeysHelp(entity.DefaultSettings()))

	in := entity.DefaultSettingsInput()
	in.Bindings = map[entity.HintMode]string{entity.HintEditable: "ctrl+e", entity.HintMenuable: "f2"}
	settings, err := entity.NewSettings(in)
	require.NoError(t, err)
	assert.Equal(t, "ctrl+e/f2", hintKeysHelp(settings))

	in.Bindings = nil
	settings, err = entity.NewSettings(in)
	require.NoError(t, err)
	assert.Equal(t, "(unbound)", hintKeysHelp(settings))
}

func TestConfigInitThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := run(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "default config")
	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(filepath.Dir(path), "config.schema.json"))

	out, err = run(t, "--config", path, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Config is valid")

	_, err = run(t, "--config", path, "config", "init")
	assert.Error(t, err, "init refuses to overwrite")
}

func TestConfigValidate_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[queue]\ncapacity = 0\n"), 0o644))

	out, err := run(t, "--config", path, "config", "validate")

	require.Error(t, err)
	assert.Contains(t, out, "queue.capacity must be at least 1")
}

func TestConfigShow(t *testing.T) {
	out, err := run(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[hints]")
	assert.Contains(t, out, "asdfghjkl")
}

func TestConfigSchema(t *testing.T) {
	out, err := run(t, "config", "schema")

	require.NoError(t, err)
	assert.Contains(t, out, `"alphabet"`)
}
