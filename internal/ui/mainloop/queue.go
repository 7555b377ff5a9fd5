package mainloop

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/logging"
)

var (
	// ErrQueueClosed is returned when pushing to a closed queue.
	ErrQueueClosed = errors.New("notification queue closed")
	// ErrQueueFull is returned when a notification is dropped for lack of room.
	ErrQueueFull = errors.New("notification queue full")
)

// DefaultQueueCapacity bounds the notifications waiting for one drain.
const DefaultQueueCapacity = 256

const drainKey = "notification-drain"

// Kind identifies a host notification.
type Kind int

// Notification kinds.
const (
	KindWindowCreated Kind = iota
	KindWindowDestroyed
	KindPopupShown
	KindPopupHidden
	KindCommand
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindWindowCreated:
		return "window-created"
	case KindWindowDestroyed:
		return "window-destroyed"
	case KindPopupShown:
		return "popup-shown"
	case KindPopupHidden:
		return "popup-hidden"
	case KindCommand:
		return "command"
	default:
		return "unknown"
	}
}

// Notification is one event crossing into the UI thread.
type Notification struct {
	Kind    Kind
	Element port.Element
	// Argv and Reply are used by KindCommand. Reply runs on the UI thread.
	Argv  []string
	Reply func(out string, err error)
}

// WindowCreated announces a new top-level window.
func WindowCreated(w port.Element) Notification {
	return Notification{Kind: KindWindowCreated, Element: w}
}

// WindowDestroyed announces a destroyed top-level window.
func WindowDestroyed(w port.Element) Notification {
	return Notification{Kind: KindWindowDestroyed, Element: w}
}

// PopupShown announces a popup that became visible.
func PopupShown(p port.Element) Notification {
	return Notification{Kind: KindPopupShown, Element: p}
}

// PopupHidden announces a popup that was closed.
func PopupHidden(p port.Element) Notification {
	return Notification{Kind: KindPopupHidden, Element: p}
}

// Command asks for a text command to run; reply receives its output.
func Command(argv []string, reply func(out string, err error)) Notification {
	return Notification{Kind: KindCommand, Argv: argv, Reply: reply}
}

// Sink consumes notifications on the UI thread.
type Sink interface {
	AttachToWindow(w port.Element) bool
	DetachWindow(w port.Element)
	PopupShown(p port.Element)
	PopupHidden(p port.Element)
	Execute(argv []string) (string, error)
}

// Queue buffers notifications from any goroutine under a short-lived lock
// and applies them to the Sink from a single coalesced UI-thread callback.
type Queue struct {
	mu       sync.Mutex
	items    []Notification
	capacity int
	dropped  uint64
	closed   bool

	sink      Sink
	coalescer *Coalescer
	log       zerolog.Logger
}

// NewQueue creates a queue draining into sink through post.
// A capacity below 1 uses DefaultQueueCapacity.
func NewQueue(ctx context.Context, capacity int, sink Sink, post func(func())) *Queue {
	if sink == nil {
		panic("mainloop.NewQueue: sink cannot be nil")
	}
	if capacity < 1 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{
		capacity:  capacity,
		sink:      sink,
		coalescer: NewCoalescer(post),
		log:       logging.FromContext(ctx).With().Str("component", "mainloop").Logger(),
	}
}

// Push enqueues n and schedules a drain. Safe from any goroutine.
// When the queue is full the new notification is dropped.
func (q *Queue) Push(n Notification) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	if len(q.items) >= q.capacity {
		q.dropped++
		dropped := q.dropped
		q.mu.Unlock()
		q.log.Warn().
			Str("kind", n.Kind.String()).
			Uint64("dropped", dropped).
			Msg("notification queue full, dropping")
		return fmt.Errorf("%w: %s", ErrQueueFull, n.Kind)
	}
	q.items = append(q.items, n)
	q.mu.Unlock()

	q.coalescer.Post(drainKey, q.drain)
	return nil
}

func (q *Queue) drain() { q.Drain() }

// Drain applies every queued notification to the sink in push order and
// returns how many were applied. It must run on the UI thread.
func (q *Queue) Drain() int {
	q.mu.Lock()
	items := q.items
	q.items = nil
	q.mu.Unlock()

	for _, n := range items {
		q.apply(n)
	}
	if len(items) > 0 {
		q.log.Trace().Int("count", len(items)).Msg("drained notifications")
	}
	return len(items)
}

func (q *Queue) apply(n Notification) {
	switch n.Kind {
	case KindWindowCreated:
		q.sink.AttachToWindow(n.Element)
	case KindWindowDestroyed:
		q.sink.DetachWindow(n.Element)
	case KindPopupShown:
		q.sink.PopupShown(n.Element)
	case KindPopupHidden:
		q.sink.PopupHidden(n.Element)
	case KindCommand:
		out, err := q.sink.Execute(n.Argv)
		if n.Reply != nil {
			n.Reply(out, err)
		}
	default:
		q.log.Warn().Int("kind", int(n.Kind)).Msg("unknown notification kind")
	}
}

// Len returns the number of notifications waiting for a drain.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Dropped returns how many notifications were lost to overflow.
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// Close rejects further pushes and discards queued notifications.
// Pending command replies receive ErrQueueClosed.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	items := q.items
	q.items = nil
	q.mu.Unlock()

	q.coalescer.Destroy()
	for _, n := range items {
		if n.Reply != nil {
			n.Reply("", ErrQueueClosed)
		}
	}
}
