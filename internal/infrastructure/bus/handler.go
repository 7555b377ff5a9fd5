// Package bus exposes the controller's text-command surface on the D-Bus
// session bus and provides the matching client.
package bus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/dumbhint/internal/logging"
	"github.com/bnema/dumbhint/internal/ui/mainloop"
)

const (
	// Interface is the D-Bus interface carrying RunCommand.
	Interface = "io.github.bnema.DumbHint"

	errorFailed  = Interface + ".Error.Failed"
	errorTimeout = Interface + ".Error.Timeout"
	errorBusy    = Interface + ".Error.Busy"

	// DefaultTimeout bounds how long a bus call waits for the UI thread.
	DefaultTimeout = 5 * time.Second
)

// ErrTimeout is returned when the UI thread does not answer in time.
var ErrTimeout = errors.New("command timed out")

// Pusher accepts notifications for the UI thread. *mainloop.Queue implements it.
type Pusher interface {
	Push(n mainloop.Notification) error
}

// Handler is the exported D-Bus object. Its methods run on godbus goroutines
// and hand every command to the UI thread through a Pusher.
type Handler struct {
	ctx     context.Context
	queue   Pusher
	timeout time.Duration
}

// NewHandler creates a Handler. A zero timeout means DefaultTimeout.
func NewHandler(ctx context.Context, queue Pusher, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Handler{ctx: logging.WithComponent(ctx, "bus"), queue: queue, timeout: timeout}
}

type result struct {
	out string
	err error
}

// RunCommand runs argv on the UI thread and returns its output.
func (h *Handler) RunCommand(argv []string) (string, *dbus.Error) {
	out, err := h.run(argv)
	if err == nil {
		return out, nil
	}

	name := errorFailed
	switch {
	case errors.Is(err, ErrTimeout):
		name = errorTimeout
	case errors.Is(err, mainloop.ErrQueueFull), errors.Is(err, mainloop.ErrQueueClosed):
		name = errorBusy
	}
	return "", dbus.NewError(name, []interface{}{err.Error()})
}

func (h *Handler) run(argv []string) (string, error) {
	log := logging.FromContext(h.ctx)
	log.Debug().Strs("argv", argv).Msg("bus command received")

	done := make(chan result, 1)
	n := mainloop.Command(argv, func(out string, err error) {
		done <- result{out: out, err: err}
	})
	if err := h.queue.Push(n); err != nil {
		log.Warn().Err(err).Strs("argv", argv).Msg("bus command rejected")
		return "", err
	}

	timer := time.NewTimer(h.timeout)
	defer timer.Stop()
	select {
	case r := <-done:
		return r.out, r.err
	case <-timer.C:
		log.Warn().Strs("argv", argv).Dur("timeout", h.timeout).Msg("bus command timed out")
		return "", fmt.Errorf("%w: %s", ErrTimeout, strings.Join(argv, " "))
	case <-h.ctx.Done():
		return "", h.ctx.Err()
	}
}
