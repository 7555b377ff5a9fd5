package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescer_MergesBurst(t *testing.T) {
	var scheduled []func()
	c := NewCoalescer(func(fn func()) { scheduled = append(scheduled, fn) })

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("drain", func() { value = v })
	}

	require.Len(t, scheduled, 1)
	assert.True(t, c.Pending("drain"))
	assert.Equal(t, uint64(4), c.Merged())

	scheduled[0]()

	assert.Equal(t, 5, value, "latest callback runs")
	assert.False(t, c.Pending("drain"))
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	var scheduled []func()
	c := NewCoalescer(func(fn func()) { scheduled = append(scheduled, fn) })

	assert.True(t, c.Post("a", func() {}))
	assert.True(t, c.Post("b", func() {}))
	assert.False(t, c.Post("a", func() {}))
	assert.False(t, c.Post("", func() {}))
	assert.False(t, c.Post("c", nil))

	assert.Len(t, scheduled, 2)
}

func TestCoalescer_ReschedulesAfterRun(t *testing.T) {
	var scheduled []func()
	c := NewCoalescer(func(fn func()) { scheduled = append(scheduled, fn) })

	runs := 0
	c.Post("k", func() { runs++ })
	scheduled[0]()
	c.Post("k", func() { runs++ })

	require.Len(t, scheduled, 2)
	scheduled[1]()
	assert.Equal(t, 2, runs)
}

func TestCoalescer_DropsWorkAfterDestroy(t *testing.T) {
	var scheduled []func()
	c := NewCoalescer(func(fn func()) { scheduled = append(scheduled, fn) })

	ran := false
	c.Post("k", func() { ran = true })
	c.Destroy()
	scheduled[0]()

	assert.False(t, ran)
	assert.False(t, c.Post("k", func() { ran = true }))
	assert.Len(t, scheduled, 1)
}

func TestNewCoalescer_PanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { NewCoalescer(nil) })
}
