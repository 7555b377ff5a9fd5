package cli

import (
	"context"
	"fmt"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/infrastructure/bus"
	"github.com/bnema/dumbhint/internal/infrastructure/config"
	"github.com/bnema/dumbhint/internal/infrastructure/fixture"
	"github.com/bnema/dumbhint/internal/logging"
	"github.com/bnema/dumbhint/internal/ui/controller"
	"github.com/bnema/dumbhint/internal/ui/mainloop"
)

const settingsKey = "settings"

// HostOptions configure a Host.
type HostOptions struct {
	Config    *config.Config
	Tree      *fixture.Tree
	Presenter port.OverlayPresenter
	Clipboard port.Clipboard
	// Post schedules a function on the UI thread.
	Post func(func())
}

// Host runs a hint controller over a fixture tree. Every notification from
// other goroutines reaches the controller through Queue, which drains on the
// UI thread given by HostOptions.Post.
type Host struct {
	ctx      context.Context
	Ctrl     *controller.Controller
	Queue    *mainloop.Queue
	Tree     *fixture.Tree
	Exec     *fixture.Executor
	settings *mainloop.Coalescer
	server   *bus.Server
}

// NewHost builds the controller and its notification queue.
func NewHost(ctx context.Context, opts HostOptions) (*Host, error) {
	if opts.Post == nil {
		return nil, fmt.Errorf("host: post function is required")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	tree := opts.Tree
	if tree == nil {
		tree = fixture.Demo()
	}

	ctx = logging.WithComponent(ctx, "host")
	exec := fixture.NewExecutor()
	ctrl, err := controller.Create(ctx, settings, controller.Deps{
		Executor:  exec,
		Clipboard: opts.Clipboard,
		Presenter: opts.Presenter,
		Windows:   tree,
	})
	if err != nil {
		return nil, err
	}

	h := &Host{
		ctx:      ctx,
		Ctrl:     ctrl,
		Queue:    mainloop.NewQueue(ctx, cfg.Queue.Capacity, ctrl, opts.Post),
		Tree:     tree,
		Exec:     exec,
		settings: mainloop.NewCoalescer(opts.Post),
	}
	// Popups are announced the way a toolkit would: asynchronously.
	exec.OnPopupShown = func(p *fixture.Node) { h.push(mainloop.PopupShown(p)) }
	exec.OnPopupHidden = func(p *fixture.Node) { h.push(mainloop.PopupHidden(p)) }
	return h, nil
}

func (h *Host) push(n mainloop.Notification) {
	if err := h.Queue.Push(n); err != nil {
		logging.FromContext(h.ctx).Warn().Err(err).Str("kind", n.Kind.String()).Msg("notification lost")
	}
}

// ServeBus exposes the command surface on the session bus.
func (h *Host) ServeBus(cfg config.DBusConfig) error {
	handler := bus.NewHandler(h.ctx, h.Queue, bus.DefaultTimeout)
	server, err := bus.Serve(h.ctx, cfg.BusName, cfg.ObjectPath, handler)
	if err != nil {
		return err
	}
	h.server = server
	return nil
}

// Watch reconfigures the controller whenever mgr reloads. Bursts of
// reloads collapse into one reconfiguration on the UI thread.
func (h *Host) Watch(mgr *config.Manager) error {
	mgr.OnConfigChange(func(cfg *config.Config) {
		settings, err := cfg.Settings()
		if err != nil {
			logging.FromContext(h.ctx).Warn().Err(err).Msg("ignoring invalid settings")
			return
		}
		h.settings.Post(settingsKey, func() {
			h.Ctrl.Reconfigure(settings)
			logging.FromContext(h.ctx).Info().Msg("settings reloaded")
		})
	})
	return mgr.Watch()
}

// Focused returns the element keys are delivered to: the executor's focus,
// else the first window.
func (h *Host) Focused() port.Element {
	if f := h.Exec.Focused; f != nil && f.IsVisible() {
		return f
	}
	if len(h.Tree.Windows) > 0 {
		return h.Tree.Windows[0]
	}
	return nil
}

// Close stops the bus, the queue and the controller. It must run on the UI thread.
func (h *Host) Close() {
	if h.server != nil {
		if err := h.server.Close(); err != nil {
			logging.FromContext(h.ctx).Debug().Err(err).Msg("closing bus connection")
		}
	}
	h.Queue.Close()
	h.settings.Destroy()
	h.Ctrl.Shutdown()
}
