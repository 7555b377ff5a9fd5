package model_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumbhint/internal/cli/model"
	"github.com/bnema/dumbhint/internal/domain/entity"
)

func TestKeyFromTea(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want entity.Key
		ok   bool
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, entity.RuneKey('a', entity.ModNone), true},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}, Alt: true}, entity.RuneKey('f', entity.ModAlt), true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, entity.SpecialKey(entity.KeyEscape, entity.ModNone), true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, entity.SpecialKey(entity.KeyEnter, entity.ModNone), true},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, entity.SpecialKey(entity.KeyTab, entity.ModShift), true},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, entity.SpecialKey(entity.KeyBackspace, entity.ModNone), true},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, entity.SpecialKey(entity.KeyPageUp, entity.ModNone), true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, entity.SpecialKey(entity.KeySpace, entity.ModNone), true},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello"), Paste: true}, entity.Key{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := model.KeyFromTea(tt.msg)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Matches(tt.want), "got %v want %v", got, tt.want)
			}
		})
	}
}
