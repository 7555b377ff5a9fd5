package port

import "context"

// Clipboard is where yank hints put the display text of the accepted
// element. Implementations may block on an external tool, so every call
// takes a context.
type Clipboard interface {
	// WriteText copies text to the clipboard.
	WriteText(ctx context.Context, text string) error

	// ReadText returns the current text, or "" when there is none.
	ReadText(ctx context.Context) (string, error)

	// Clear clears the clipboard contents.
	Clear(ctx context.Context) error

	// HasText reports whether ReadText would return something.
	HasText(ctx context.Context) (bool, error)
}
