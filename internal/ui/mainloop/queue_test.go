package mainloop_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/domain/entity"
	"github.com/bnema/dumbhint/internal/infrastructure/fixture"
	"github.com/bnema/dumbhint/internal/ui/mainloop"
)

type recordingSink struct {
	mu     sync.Mutex
	events []string
}

func (s *recordingSink) add(e string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *recordingSink) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

func (s *recordingSink) AttachToWindow(w port.Element) bool {
	s.add("attach " + port.ElementName(w))
	return true
}

func (s *recordingSink) DetachWindow(w port.Element) { s.add("detach " + port.ElementName(w)) }
func (s *recordingSink) PopupShown(p port.Element) { s.add("shown " + port.ElementName(p)) }
func (s *recordingSink) PopupHidden(p port.Element) { s.add("hidden " + port.ElementName(p)) }

func (s *recordingSink) Execute(argv []string) (string, error) {
	s.add("exec " + argv[0])
	if argv[0] == "fail" {
		return "", errors.New("failed")
	}
	return "ok", nil
}

type manualPost struct {
	scheduled []func()
}

func (m *manualPost) post(fn func()) { m.scheduled = append(m.scheduled, fn) }

func (m *manualPost) runAll() {
	for len(m.scheduled) > 0 {
		fn := m.scheduled[0]
		m.scheduled = m.scheduled[1:]
		fn()
	}
}

func TestQueue_DrainsInOrderWithOneCallback(t *testing.T) {
	sink := &recordingSink{}
	post := &manualPost{}
	q := mainloop.NewQueue(context.Background(), 8, sink, post.post)
	w := fixture.Window("main")
	menu := fixture.El(entity.TagMenu, "menu")

	require.NoError(t, q.Push(mainloop.WindowCreated(w)))
	require.NoError(t, q.Push(mainloop.PopupShown(menu)))
	require.NoError(t, q.Push(mainloop.PopupHidden(menu)))
	require.NoError(t, q.Push(mainloop.WindowDestroyed(w)))

	assert.Len(t, post.scheduled, 1)
	assert.Equal(t, 4, q.Len())
	assert.Empty(t, sink.Events(), "nothing touches the sink before the drain")

	post.runAll()

	assert.Equal(t, []string{"attach main", "shown menu", "hidden menu", "detach main"}, sink.Events())
	assert.Equal(t, 0, q.Len())
}

func TestQueue_OverflowDropsNewest(t *testing.T) {
	sink := &recordingSink{}
	post := &manualPost{}
	q := mainloop.NewQueue(context.Background(), 2, sink, post.post)

	require.NoError(t, q.Push(mainloop.WindowCreated(fixture.Window("a"))))
	require.NoError(t, q.Push(mainloop.WindowCreated(fixture.Window("b"))))
	err := q.Push(mainloop.WindowCreated(fixture.Window("c")))

	assert.ErrorIs(t, err, mainloop.ErrQueueFull)
	assert.Equal(t, uint64(1), q.Dropped())

	post.runAll()
	assert.Equal(t, []string{"attach a", "attach b"}, sink.Events())

	require.NoError(t, q.Push(mainloop.WindowCreated(fixture.Window("d"))), "room again after drain")
}

func TestQueue_CommandReply(t *testing.T) {
	sink := &recordingSink{}
	post := &manualPost{}
	q := mainloop.NewQueue(context.Background(), 0, sink, post.post)

	var outs []string
	var errs []error
	reply := func(out string, err error) {
		outs = append(outs, out)
		errs = append(errs, err)
	}
	require.NoError(t, q.Push(mainloop.Command([]string{"reset"}, reply)))
	require.NoError(t, q.Push(mainloop.Command([]string{"fail"}, reply)))
	post.runAll()

	assert.Equal(t, []string{"ok", ""}, outs)
	assert.NoError(t, errs[0])
	assert.Error(t, errs[1])
}

func TestQueue_Close(t *testing.T) {
	sink := &recordingSink{}
	post := &manualPost{}
	q := mainloop.NewQueue(context.Background(), 4, sink, post.post)

	var replyErr error
	require.NoError(t, q.Push(mainloop.Command([]string{"reset"}, func(_ string, err error) { replyErr = err })))
	q.Close()
	q.Close()

	assert.ErrorIs(t, replyErr, mainloop.ErrQueueClosed)
	assert.ErrorIs(t, q.Push(mainloop.WindowCreated(fixture.Window("a"))), mainloop.ErrQueueClosed)

	post.runAll()
	assert.Empty(t, sink.Events())
}

func TestQueue_ConcurrentProducers(t *testing.T) {
	sink := &recordingSink{}
	loop := mainloop.NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = loop.Run(ctx) }()

	q := mainloop.NewQueue(ctx, 1000, sink, loop.Post)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = q.Push(mainloop.PopupShown(fixture.El(entity.TagMenu, "m")))
			}
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool { return len(sink.Events()) == 400 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, uint64(0), q.Dropped())
}
