package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbhint/internal/cli/styles"
)

func TestConfigRenderer_RenderInvalid(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())
	err := errors.New("config validation failed:\n  - queue.capacity must be at least 1\n  - hints: alphabet must contain at least 2 distinct characters")

	out := r.RenderInvalid("/tmp/dumbhint/config.toml", err)

	require.Contains(t, out, "config.toml")
	assert.Contains(t, out, "Config is invalid")
	assert.Contains(t, out, "queue.capacity must be at least 1")
	assert.Contains(t, out, "alphabet must contain")
	assert.NotContains(t, out, "config validation failed")
}

func TestConfigRenderer_RenderConfigInfo_NoFile(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderConfigInfo(""), "using defaults")
	assert.Contains(t, r.RenderValid("/x/config.toml"), "Config is valid")
}
