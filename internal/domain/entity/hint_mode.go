package entity

import (
	"fmt"
	"strings"
)

// HintMode is the category of action a hinting session targets.
type HintMode int

const (
	// HintActivatable clicks the target.
	HintActivatable HintMode = iota
	// HintEditable focuses the target and starts editing.
	HintEditable
	// HintFocusable moves keyboard focus to the target.
	HintFocusable
	// HintYankable copies the target's display text.
	HintYankable
	// HintMenuable opens the target's menu or activates a menu entry.
	HintMenuable
	// HintContextable opens the target's context menu.
	HintContextable
)

var hintModeNames = [...]string{
	HintActivatable: "activatable",
	HintEditable:    "editable",
	HintFocusable:   "focusable",
	HintYankable:    "yankable",
	HintMenuable:    "menuable",
	HintContextable: "contextable",
}

// AllHintModes returns every hint mode in declaration order.
func AllHintModes() []HintMode {
	return []HintMode{
		HintActivatable,
		HintEditable,
		HintFocusable,
		HintYankable,
		HintMenuable,
		HintContextable,
	}
}

// String returns the config name of the mode.
func (m HintMode) String() string {
	if m < 0 || int(m) >= len(hintModeNames) {
		return "unknown"
	}
	return hintModeNames[m]
}

// IsMenuMode reports whether accepting in this mode may open a menu.
func (m HintMode) IsMenuMode() bool {
	return m == HintMenuable || m == HintContextable
}

// ParseHintMode maps a config name (or its short alias) to a HintMode.
func ParseHintMode(s string) (HintMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "activatable", "activate", "click":
		return HintActivatable, nil
	case "editable", "edit":
		return HintEditable, nil
	case "focusable", "focus":
		return HintFocusable, nil
	case "yankable", "yank", "copy":
		return HintYankable, nil
	case "menuable", "menu":
		return HintMenuable, nil
	case "contextable", "context":
		return HintContextable, nil
	default:
		return 0, fmt.Errorf("unknown hint mode %q", s)
	}
}
