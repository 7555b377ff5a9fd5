package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}

// DemoKeyMap holds the keys the demo handles itself. Every other key goes
// to the hint controller first.
type DemoKeyMap struct {
	Command key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding

	// Hint keys are shown in help only; the controller handles them.
	Hint   key.Binding
	Cycle  key.Binding
	Accept key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k DemoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hint, k.Cancel, k.Command, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k DemoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Hint, k.Cycle, k.Accept, k.Cancel},
		{k.Command, k.Reset},
		{k.Help, k.Quit},
	}
}

// DefaultDemoKeyMap returns the demo keybindings. hintKeys describes the
// configured hint shortcuts, e.g. "alt+f/e/g".
func DefaultDemoKeyMap(hintKeys string) DemoKeyMap {
	return DemoKeyMap{
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Hint: key.NewBinding(
			key.WithKeys(),
			key.WithHelp(hintKeys, "hint"),
		),
		Cycle: key.NewBinding(
			key.WithKeys(),
			key.WithHelp("tab/shift+tab", "cycle"),
		),
		Accept: key.NewBinding(
			key.WithKeys(),
			key.WithHelp("enter", "accept"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(),
			key.WithHelp("esc", "cancel"),
		),
	}
}
