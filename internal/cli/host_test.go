package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/cli"
	"github.com/bnema/dumbhint/internal/domain/entity"
	"github.com/bnema/dumbhint/internal/infrastructure/config"
	"github.com/bnema/dumbhint/internal/infrastructure/fixture"
	"github.com/bnema/dumbhint/internal/logging"
	"github.com/bnema/dumbhint/internal/ui/controller"
	"github.com/bnema/dumbhint/internal/ui/mainloop"
)

func startLoop(t *testing.T) *mainloop.Loop {
	t.Helper()
	loop := mainloop.NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = loop.Run(ctx) }()
	return loop
}

func TestNewHost_RequiresPost(t *testing.T) {
	_, err := cli.NewHost(context.Background(), cli.HostOptions{})
	assert.Error(t, err)
}

func TestNewHost_InvalidSettings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Hints.Alphabet = "a"

	_, err := cli.NewHost(context.Background(), cli.HostOptions{Config: cfg, Post: func(fn func()) { fn() }})

	assert.ErrorIs(t, err, entity.ErrInvalidSettings)
}

func TestHost_CommandsFromOtherGoroutines(t *testing.T) {
	loop := startLoop(t)
	host, err := cli.NewHost(context.Background(), cli.HostOptions{Post: loop.Post})
	require.NoError(t, err)

	replies := make(chan string, 2)
	for _, argv := range [][]string{{"hint", "focus"}, {"windows"}} {
		go func() {
			_ = host.Queue.Push(mainloop.Command(argv, func(out string, err error) {
				if err != nil {
					replies <- err.Error()
					return
				}
				replies <- out
			}))
		}()
	}

	var got []string
	for range 2 {
		select {
		case r := <-replies:
			got = append(got, r)
		case <-time.After(2 * time.Second):
			t.Fatal("no reply")
		}
	}
	assert.Contains(t, got, "editor: hint(focusable)\n")

	require.NoError(t, loop.Invoke(context.Background(), host.Close))
	err = host.Queue.Push(mainloop.Command([]string{"reset"}, nil))
	assert.ErrorIs(t, err, mainloop.ErrQueueClosed)
}

func TestHost_PopupsArriveThroughQueue(t *testing.T) {
	var posted []func()
	host, err := cli.NewHost(context.Background(), cli.HostOptions{
		Post: func(fn func()) { posted = append(posted, fn) },
	})
	require.NoError(t, err)
	save := host.Tree.Find("save")

	host.Ctrl.RouteKeyEvent(save, entity.RuneKey('f', entity.ModAlt))
	for _, r := range "aa" {
		host.Ctrl.RouteKeyEvent(save, entity.RuneKey(r, entity.ModNone))
	}

	wc, ok := host.Ctrl.ActiveWindow()
	require.True(t, ok)
	require.Equal(t, 2, wc.Depth())
	assert.Len(t, wc.Popups(), 1)
	assert.Equal(t, 1, host.Queue.Len(), "toolkit announcement still queued")

	for _, fn := range posted {
		fn()
	}
	assert.Zero(t, host.Queue.Len())
	assert.Len(t, wc.Popups(), 1, "duplicate announcement ignored")
	assert.Equal(t, 2, wc.Depth())
	assert.Equal(t, controller.StateHint, wc.State())
	assert.Equal(t, entity.HintMenuable, wc.Mode())
}

func TestHost_WatchReconfigures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[hints]\nalphabet = \"asdf\"\n"), 0o644))
	mgr, err := config.NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	loop := startLoop(t)
	host, err := cli.NewHost(context.Background(), cli.HostOptions{Config: mgr.Get(), Post: loop.Post})
	require.NoError(t, err)
	require.NoError(t, host.Watch(mgr))

	require.NoError(t, os.WriteFile(path, []byte("[hints]\nalphabet = \"jkl\"\n"), 0o644))

	assert.Eventually(t, func() bool {
		var alphabet string
		_ = loop.Invoke(context.Background(), func() { alphabet = string(host.Ctrl.Settings().Alphabet()) })
		return alphabet == "jkl"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestHost_Focused(t *testing.T) {
	host, err := cli.NewHost(context.Background(), cli.HostOptions{Post: func(fn func()) { fn() }})
	require.NoError(t, err)

	assert.Equal(t, host.Tree.Windows[0], host.Focused())

	save := host.Tree.Find("save")
	require.NoError(t, host.Exec.SetFocus(save, nil))
	assert.Equal(t, save, host.Focused())
}

func TestLogPresenter_LogsOverlays(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.ParseLevel("debug"), Format: "json", Output: &buf})
	pres := cli.NewLogPresenter(logging.WithContext(context.Background(), logger))
	tree := fixture.Demo()

	pres.ShowOverlay(port.OverlayView{
		ID:     "ov-1",
		Root:   tree.Window("editor"),
		Labels: []port.HintLabel{{Code: "a"}, {Code: "s"}},
	})
	pres.ShowError("boom")

	out := buf.String()
	assert.Contains(t, out, `"codes":"a s"`)
	assert.Contains(t, out, `"component":"presenter"`)
	assert.Contains(t, out, `"message":"boom"`)
}
