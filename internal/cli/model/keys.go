package model

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dumbhint/internal/domain/entity"
)

var teaKeyAliases = map[string]string{
	"pgup":   "pageup",
	"pgdown": "pagedown",
}

// KeyFromTea converts a terminal key press to an engine key. Pastes and
// keys the engine has no name for report false.
func KeyFromTea(msg tea.KeyMsg) (entity.Key, bool) {
	if msg.Paste || (msg.Type == tea.KeyRunes && len(msg.Runes) != 1) {
		return entity.Key{}, false
	}
	if msg.Type == tea.KeySpace {
		mods := entity.ModNone
		if msg.Alt {
			mods = entity.ModAlt
		}
		return entity.SpecialKey(entity.KeySpace, mods), true
	}

	s := msg.String()
	i := strings.LastIndex(s, "+")
	if i > 0 && i < len(s)-1 {
		if alias, ok := teaKeyAliases[s[i+1:]]; ok {
			s = s[:i+1] + alias
		}
	} else if alias, ok := teaKeyAliases[s]; ok {
		s = alias
	}
	return entity.ParseKey(s)
}
