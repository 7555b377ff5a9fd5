package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path, or a note that defaults are in use.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	if path == "" {
		return fmt.Sprintf(
			"\n  %s Config %s\n",
			iconStyle.Render(IconConfig),
			r.theme.Subtle.Render("(none, using defaults)"),
		)
	}
	return fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
}

// RenderValid renders the "config is valid" message.
func (r *ConfigRenderer) RenderValid(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf(
		"%s  %s Config is valid\n",
		r.RenderConfigInfo(path),
		iconStyle.Render(IconCheck),
	)
}

// RenderInvalid renders a validation failure, one problem per line.
func (r *ConfigRenderer) RenderInvalid(path string, err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	var sb strings.Builder
	sb.WriteString(r.RenderConfigInfo(path))
	sb.WriteString(fmt.Sprintf("  %s Config is invalid\n", iconStyle.Render(IconX)))
	for _, line := range strings.Split(err.Error(), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "- ") {
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s %s\n",
			iconStyle.Render(IconCursor),
			r.theme.Normal.Render(strings.TrimPrefix(line, "- ")),
		))
	}
	return sb.String()
}

// RenderWritten renders the message shown after writing a file.
func (r *ConfigRenderer) RenderWritten(what, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf(
		"\n  %s Wrote %s to %s\n",
		iconStyle.Render(IconCheck),
		what,
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
