package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumbhint/internal/cli/styles"
)

func TestCanvas_PutAndClip(t *testing.T) {
	c := styles.NewCanvas(8, 2)

	c.Put(0, 0, "Save", styles.PaintText)
	c.Put(2, 0, "AD", styles.PaintHint)
	c.Put(6, 1, "overflow", styles.PaintText)
	c.Put(0, 5, "ignored", styles.PaintText)

	assert.Equal(t, "SaAD\n      ov", c.Plain())
}

func TestCanvas_RenderKeepsText(t *testing.T) {
	c := styles.NewCanvas(6, 1)
	c.Put(0, 0, "ab", styles.PaintHintSelected)
	c.Put(3, 0, "cd", styles.PaintMuted)

	out := c.Render(styles.NewTheme())

	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "cd")
}
