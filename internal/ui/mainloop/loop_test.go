package mainloop_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbhint/internal/ui/mainloop"
)

func TestLoop_RunsTasksInOrder(t *testing.T) {
	loop := mainloop.NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = loop.Run(ctx) }()

	var got []int
	for i := 0; i < 5; i++ {
		v := i
		loop.Post(func() { got = append(got, v) })
	}
	require.NoError(t, loop.Invoke(ctx, func() {}))

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestLoop_PostFromLoopGoroutine(t *testing.T) {
	loop := mainloop.NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = loop.Run(ctx) }()

	done := make(chan struct{})
	loop.Post(func() {
		loop.Post(func() { close(done) })
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("nested post never ran")
	}
}

func TestLoop_SurvivesPanickingTask(t *testing.T) {
	loop := mainloop.NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = loop.Run(ctx) }()

	loop.Post(func() { panic("boom") })
	ran := false
	require.NoError(t, loop.Invoke(ctx, func() { ran = true }))
	assert.True(t, ran)
}

func TestLoop_StopEndsRun(t *testing.T) {
	loop := mainloop.NewLoop()
	errc := make(chan error, 1)
	go func() { errc <- loop.Run(context.Background()) }()

	loop.Stop()
	loop.Stop()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.ErrorIs(t, loop.Invoke(context.Background(), func() {}), mainloop.ErrLoopStopped)
}

func TestLoop_ContextCancelEndsRun(t *testing.T) {
	loop := mainloop.NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- loop.Run(ctx) }()

	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	<-loop.Done()
}
