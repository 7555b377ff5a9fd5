package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Hints.Alphabet = "hjkl"
	cfg.Queue.Capacity = 32

	require.NoError(t, WriteConfigOrdered(cfg, path))

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	assert.Equal(t, cfg, mgr.Get())
}

func TestWriteConfigOrdered_Deterministic(t *testing.T) {
	first, err := Marshal(DefaultConfig())
	require.NoError(t, err)
	second, err := Marshal(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.True(t, strings.HasPrefix(string(first), "# dumbhint configuration"))
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "# mine\n")

	err := WriteDefault(path, false)
	assert.ErrorIs(t, err, ErrConfigExists)
	data, _ := os.ReadFile(path)
	assert.Equal(t, "# mine\n", string(data))

	require.NoError(t, WriteDefault(path, true))
	data, _ = os.ReadFile(path)
	assert.Contains(t, string(data), "asdfghjkl")
}

func TestSortSections(t *testing.T) {
	input := "top = 1\n\n[zeta]\nz = 1\n\n[alpha]\na = 1\n\n  [alpha.child]\n  c = 1\n"

	got := sortSections(input)

	assert.Equal(t, "top = 1\n\n[alpha]\na = 1\n\n  [alpha.child]\n  c = 1\n\n[zeta]\nz = 1\n", got)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	schema := string(data)
	assert.Contains(t, schema, `"alphabet"`)
	assert.Contains(t, schema, `"auto_accept_unique_hint"`)
	assert.Contains(t, schema, `"dumbhint configuration"`)

	path, err := WriteSchema(t.TempDir())
	require.NoError(t, err)
	assert.FileExists(t, path)
}
