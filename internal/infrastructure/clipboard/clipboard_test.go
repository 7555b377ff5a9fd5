package clipboard_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbhint/internal/infrastructure/clipboard"
)

func TestMemory_WriteReadClear(t *testing.T) {
	ctx := context.Background()
	c := clipboard.NewMemory()

	has, err := c.HasText(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, c.WriteText(ctx, "Quarterly report"))
	text, err := c.ReadText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Quarterly report", text)

	has, _ = c.HasText(ctx)
	assert.True(t, has)

	require.NoError(t, c.Clear(ctx))
	has, _ = c.HasText(ctx)
	assert.False(t, has)
	assert.Equal(t, "memory", c.Backend())
}

func TestMemory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := clipboard.NewMemory().WriteText(ctx, "x")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCommand_PipesThroughTool(t *testing.T) {
	store := filepath.Join(t.TempDir(), "clip")
	c, err := clipboard.NewCommand(
		[]string{"sh", "-c", "cat > " + store},
		[]string{"cat", store},
	)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, c.WriteText(ctx, "hello\nworld"))
	text, err := c.ReadText(ctx)

	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", text)
}

func TestCommand_FailingTool(t *testing.T) {
	c, err := clipboard.NewCommand([]string{"false"}, []string{"false"})
	require.NoError(t, err)
	ctx := context.Background()

	assert.Error(t, c.WriteText(ctx, "x"))
	has, err := c.HasText(ctx)
	assert.NoError(t, err)
	assert.False(t, has)
}

func TestNewCommand_Empty(t *testing.T) {
	_, err := clipboard.NewCommand(nil, []string{"cat"})
	assert.ErrorIs(t, err, clipboard.ErrUnavailable)
}
