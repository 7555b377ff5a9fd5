package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// ErrInvalidSettings wraps every configuration error found while building Settings.
var ErrInvalidSettings = errors.New("invalid hint settings")

// DefaultAlphabet is the home-row alphabet used when none is configured.
const DefaultAlphabet = "asdfghjkl"

// SettingsInput is the raw, unvalidated configuration handed to NewSettings.
type SettingsInput struct {
	Alphabet                 string
	AutoAcceptUniqueHint     bool
	AcceptedHighlight        time.Duration
	Bindings                 map[HintMode]string
	PassthroughKeyboardInput bool
}

// Settings is the immutable configuration consumed by the hinting engine.
type Settings struct {
	alphabet                 []rune
	autoAcceptUniqueHint     bool
	acceptedHighlight        time.Duration
	bindings                 map[HintMode]Key
	passthroughKeyboardInput bool
}

// DefaultSettingsInput returns the default raw configuration.
func DefaultSettingsInput() SettingsInput {
	return SettingsInput{
		Alphabet:             DefaultAlphabet,
		AutoAcceptUniqueHint: true,
		AcceptedHighlight:    200 * time.Millisecond,
		Bindings: map[HintMode]string{
			HintActivatable: "alt+f",
			HintEditable:    "alt+e",
			HintFocusable:   "alt+g",
			HintYankable:    "alt+y",
			HintMenuable:    "alt+m",
			HintContextable: "alt+c",
		},
	}
}

// DefaultSettings returns validated default settings.
func DefaultSettings() Settings {
	s, err := NewSettings(DefaultSettingsInput())
	if err != nil {
		panic(fmt.Sprintf("entity.DefaultSettings: %v", err))
	}
	return s
}

// NewSettings validates the input and builds an immutable Settings value.
// All problems are reported together, wrapped in ErrInvalidSettings.
func NewSettings(in SettingsInput) (Settings, error) {
	var problems []string

	alphabet, alphaProblems := validateAlphabet(in.Alphabet)
	problems = append(problems, alphaProblems...)

	if in.AcceptedHighlight < 0 {
		problems = append(problems, "accepted highlight duration must be non-negative")
	}

	bindings := make(map[HintMode]Key, len(in.Bindings))
	owner := make(map[Key]HintMode, len(in.Bindings))
	for _, mode := range AllHintModes() {
		raw, ok := in.Bindings[mode]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		key, ok := ParseKey(raw)
		if !ok {
			problems = append(problems, fmt.Sprintf("binding for %s: cannot parse %q", mode, raw))
			continue
		}
		if isReservedKey(key) {
			problems = append(problems, fmt.Sprintf("binding for %s: %q is reserved while hinting", mode, raw))
			continue
		}
		if other, dup := owner[key]; dup {
			problems = append(problems, fmt.Sprintf("binding %q is used by both %s and %s", raw, other, mode))
			continue
		}
		owner[key] = mode
		bindings[mode] = key
	}
	for mode := range in.Bindings {
		if mode < HintActivatable || mode > HintContextable {
			problems = append(problems, fmt.Sprintf("binding for unknown hint mode %d", int(mode)))
		}
	}

	if len(problems) > 0 {
		return Settings{}, fmt.Errorf("%w:\n  - %s", ErrInvalidSettings, strings.Join(problems, "\n  - "))
	}

	return Settings{
		alphabet:                 alphabet,
		autoAcceptUniqueHint:     in.AutoAcceptUniqueHint,
		acceptedHighlight:        in.AcceptedHighlight,
		bindings:                 bindings,
		passthroughKeyboardInput: in.PassthroughKeyboardInput,
	}, nil
}

func validateAlphabet(raw string) ([]rune, []string) {
	var problems []string
	runes := []rune(raw)
	seen := make(map[rune]bool, len(runes))
	for _, r := range runes {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			problems = append(problems, fmt.Sprintf("alphabet contains whitespace or control character %q", r))
			continue
		}
		folded := unicode.ToLower(r)
		if seen[folded] {
			problems = append(problems, fmt.Sprintf("alphabet contains duplicate character %q", r))
			continue
		}
		seen[folded] = true
	}
	if len(seen) < 2 {
		problems = append(problems, "alphabet must contain at least 2 distinct characters")
	}
	return runes, problems
}

// isReservedKey reports keys the hint state machine always handles itself.
func isReservedKey(k Key) bool {
	if k.Code == KeyRune || k.Mods&^ModShift != 0 {
		return false
	}
	switch k.Code {
	case KeyEscape, KeyEnter, KeyTab, KeyBackspace:
		return true
	default:
		return false
	}
}

// Alphabet returns a copy of the hint alphabet.
func (s Settings) Alphabet() []rune {
	out := make([]rune, len(s.alphabet))
	copy(out, s.alphabet)
	return out
}

// AutoAcceptUniqueHint reports whether a single remaining hint is accepted immediately.
func (s Settings) AutoAcceptUniqueHint() bool { return s.autoAcceptUniqueHint }

// AcceptedHighlight is how long an accepted hint stays highlighted.
func (s Settings) AcceptedHighlight() time.Duration { return s.acceptedHighlight }

// PassthroughKeyboardInput reports whether edited elements receive raw keys.
func (s Settings) PassthroughKeyboardInput() bool { return s.passthroughKeyboardInput }

// Binding returns the shortcut bound to mode, if any.
func (s Settings) Binding(mode HintMode) (Key, bool) {
	k, ok := s.bindings[mode]
	return k, ok
}

// ModeForKey returns the hint mode whose shortcut matches key.
func (s Settings) ModeForKey(key Key) (HintMode, bool) {
	for _, mode := range AllHintModes() {
		if b, ok := s.bindings[mode]; ok && key.Matches(b) {
			return mode, true
		}
	}
	return 0, false
}

// AlphabetRune maps a typed rune onto the alphabet, ignoring case.
func (s Settings) AlphabetRune(r rune) (rune, bool) {
	for _, a := range s.alphabet {
		if a == r || unicode.ToLower(a) == unicode.ToLower(r) {
			return a, true
		}
	}
	return 0, false
}
