// Package styles provides the lipgloss styles of the dumbhint terminal UI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of base colors a Theme derives its styles from.
// Label is the background of unselected hint labels.
type Palette struct {
	Background string
	Surface    string
	Raised     string
	Text       string
	Muted      string
	Accent     string
	Border     string
	Label      string
	Danger     string
}

// Theme holds the colors and styles of the demo and the config screens.
type Theme struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color

	Title      lipgloss.Style
	Normal     lipgloss.Style
	Subtle     lipgloss.Style
	Highlight  lipgloss.Style
	ErrorStyle lipgloss.Style

	// Labels drawn over hinted elements.
	HintLabel    lipgloss.Style
	HintSelected lipgloss.Style
	HintAccepted lipgloss.Style

	// Element rendering on the canvas.
	Popup    lipgloss.Style
	Focused  lipgloss.Style
	Editing  lipgloss.Style
	Disabled lipgloss.Style

	StatusBar lipgloss.Style
	ModeBadge lipgloss.Style
}

// DefaultDarkPalette is the palette of NewTheme.
func DefaultDarkPalette() Palette {
	return Palette{
		Background: "#0a0a0b",
		Surface:    "#1a1a1b",
		Raised:     "#2d2d2d",
		Text:       "#ffffff",
		Muted:      "#909090",
		Accent:     "#4ade80",
		Border:     "#333333",
		Label:      "#f59e0b",
		Danger:     "#ef4444",
	}
}

// NewTheme creates the default dark Theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultDarkPalette())
}

// NewThemeFromPalette derives every style from p.
func NewThemeFromPalette(p Palette) *Theme {
	bg := lipgloss.Color(p.Background)
	text := lipgloss.Color(p.Text)
	accent := lipgloss.Color(p.Accent)
	surface := lipgloss.Color(p.Surface)
	danger := lipgloss.Color(p.Danger)
	label := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(bg).Background(c).Bold(true)
	}

	t := &Theme{
		Background: bg,
		Text:       text,
		Muted:      lipgloss.Color(p.Muted),
		Accent:     accent,
		Border:     lipgloss.Color(p.Border),
		Error:      danger,
		Success:    accent,
	}
	t.Title = lipgloss.NewStyle().Foreground(text).Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(accent).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(danger)

	t.HintLabel = label(lipgloss.Color(p.Label))
	t.HintSelected = label(accent)
	t.HintAccepted = label(danger).Foreground(text)

	t.Popup = lipgloss.NewStyle().Foreground(text).Background(lipgloss.Color(p.Raised))
	t.Focused = lipgloss.NewStyle().Foreground(accent).Underline(true)
	t.Editing = lipgloss.NewStyle().Foreground(text).Background(surface).Underline(true)
	t.Disabled = lipgloss.NewStyle().Foreground(t.Border)

	t.StatusBar = lipgloss.NewStyle().Foreground(text).Background(surface).Padding(0, 1)
	t.ModeBadge = label(accent).Padding(0, 1)
	return t
}
