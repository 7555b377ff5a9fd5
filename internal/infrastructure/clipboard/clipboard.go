// Package clipboard provides the port.Clipboard used by yank hints.
// It prefers wl-clipboard on Wayland, then the atotto/clipboard backends
// (xclip, xsel), and falls back to a process-local buffer.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/logging"
)

// ErrUnavailable is returned when no clipboard backend is usable.
var ErrUnavailable = errors.New("no clipboard tool available (install wl-clipboard or xclip)")

type backend interface {
	name() string
	write(ctx context.Context, text string) error
	read(ctx context.Context) (string, error)
}

// Adapter implements port.Clipboard on top of one backend.
type Adapter struct {
	b backend
}

var _ port.Clipboard = (*Adapter)(nil)

// New detects the best clipboard backend for the session.
func New(ctx context.Context) *Adapter {
	log := logging.FromContext(ctx)

	if os.Getenv("WAYLAND_DISPLAY") != "" {
		copyPath, copyErr := exec.LookPath("wl-copy")
		pastePath, pasteErr := exec.LookPath("wl-paste")
		if copyErr == nil && pasteErr == nil {
			log.Debug().Str("tool", copyPath).Msg("using wl-clipboard")
			return &Adapter{b: &commandBackend{
				tool:  "wl-clipboard",
				copy:  []string{copyPath},
				paste: []string{pastePath, "--no-newline"},
			}}
		}
	}

	if !clipboard.Unsupported {
		log.Debug().Msg("using system clipboard")
		return &Adapter{b: systemBackend{}}
	}

	log.Warn().Msg("no system clipboard, yanked text stays in process")
	return NewMemory()
}

// NewMemory returns an Adapter backed by a process-local buffer.
func NewMemory() *Adapter {
	return &Adapter{b: &memoryBackend{}}
}

// NewCommand returns an Adapter that pipes text into copyArgv and reads it
// back from pasteArgv.
func NewCommand(copyArgv, pasteArgv []string) (*Adapter, error) {
	if len(copyArgv) == 0 || len(pasteArgv) == 0 {
		return nil, fmt.Errorf("%w: empty command", ErrUnavailable)
	}
	return &Adapter{b: &commandBackend{tool: copyArgv[0], copy: copyArgv, paste: pasteArgv}}, nil
}

// Backend names the backend in use.
func (a *Adapter) Backend() string { return a.b.name() }

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)
	if err := a.b.write(ctx, text); err != nil {
		log.Error().Err(err).Str("tool", a.b.name()).Msg("clipboard write failed")
		return err
	}
	log.Debug().Str("tool", a.b.name()).Int("len", len(text)).Msg("clipboard write success")
	return nil
}

// ReadText reads text from the clipboard.
func (a *Adapter) ReadText(ctx context.Context) (string, error) {
	text, err := a.b.read(ctx)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("tool", a.b.name()).Msg("clipboard read failed (may be empty)")
		return "", err
	}
	return text, nil
}

// Clear clears the clipboard contents.
func (a *Adapter) Clear(ctx context.Context) error {
	return a.WriteText(ctx, "")
}

// HasText returns true if the clipboard contains text data.
func (a *Adapter) HasText(ctx context.Context) (bool, error) {
	text, err := a.ReadText(ctx)
	if err != nil {
		// Empty clipboards often fail to read.
		return false, nil
	}
	return text != "", nil
}

type commandBackend struct {
	tool  string
	copy  []string
	paste []string
}

func (c *commandBackend) name() string { return c.tool }

func (c *commandBackend) write(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, c.copy[0], c.copy[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", c.tool, err)
	}
	return nil
}

func (c *commandBackend) read(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, c.paste[0], c.paste[1:]...).Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.tool, err)
	}
	return string(out), nil
}

// systemBackend wraps atotto/clipboard, which has no context support.
type systemBackend struct{}

func (systemBackend) name() string { return "system" }

func (systemBackend) write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return clipboard.WriteAll(text)
}

func (systemBackend) read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return clipboard.ReadAll()
}

type memoryBackend struct {
	mu   sync.Mutex
	text string
}

func (m *memoryBackend) name() string { return "memory" }

func (m *memoryBackend) write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
	return nil
}

func (m *memoryBackend) read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}
