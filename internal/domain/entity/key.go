package entity

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Modifier represents keyboard modifier flags.
type Modifier uint

const (
	// ModNone indicates no modifier is pressed.
	ModNone Modifier = 0
	// ModShift indicates the Shift key is pressed.
	ModShift Modifier = 1 << iota
	// ModCtrl indicates the Control key is pressed.
	ModCtrl
	// ModAlt indicates the Alt key is pressed.
	ModAlt
	// ModSuper indicates the Super (logo) key is pressed.
	ModSuper
)

// KeyCode identifies a non-character key. Character keys use KeyRune.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyCodeByName = map[string]KeyCode{
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"return":    KeyEnter,
	"enter":     KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"space":     KeySpace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"page_up":   KeyPageUp,
	"pagedown":  KeyPageDown,
	"page_down": KeyPageDown,
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
	"f10":       KeyF10,
	"f11":       KeyF11,
	"f12":       KeyF12,
}

var keyCodeNames = map[KeyCode]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeySpace:     "space",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

// Key is a single key press as delivered by the host.
// Letters are stored lowercase in bindings; Shift lives in Mods.
type Key struct {
	Code KeyCode
	Rune rune // Only meaningful when Code == KeyRune
	Mods Modifier
}

// RuneKey builds a character key press. Uppercase letters imply Shift.
func RuneKey(r rune, mods Modifier) Key {
	if unicode.IsUpper(r) {
		mods |= ModShift
	}
	return Key{Code: KeyRune, Rune: r, Mods: mods}
}

// SpecialKey builds a non-character key press.
func SpecialKey(code KeyCode, mods Modifier) Key {
	return Key{Code: code, Mods: mods}
}

// Normalized lowercases letters so a key press can be compared to a binding.
func (k Key) Normalized() Key {
	if k.Code == KeyRune {
		if unicode.IsUpper(k.Rune) {
			k.Mods |= ModShift
		}
		k.Rune = unicode.ToLower(k.Rune)
	}
	return k
}

// Matches reports whether the key press triggers the binding.
func (k Key) Matches(binding Key) bool {
	return k.Normalized() == binding.Normalized()
}

// HasCommandModifier reports whether Ctrl, Alt or Super is held.
func (k Key) HasCommandModifier() bool {
	return k.Mods&(ModCtrl|ModAlt|ModSuper) != 0
}

// String renders the key in config syntax (e.g. "ctrl+shift+f").
func (k Key) String() string {
	var parts []string
	if k.Mods&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if k.Mods&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if k.Mods&ModSuper != 0 {
		parts = append(parts, "super")
	}
	if k.Mods&ModShift != 0 {
		parts = append(parts, "shift")
	}
	if k.Code == KeyRune {
		parts = append(parts, string(unicode.ToLower(k.Rune)))
	} else {
		parts = append(parts, keyCodeNames[k.Code])
	}
	return strings.Join(parts, "+")
}

// ParseKey converts a config key string like "alt+f" to a Key.
// Returns false if the string cannot be parsed.
func ParseKey(s string) (Key, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Key{}, false
	}
	if s == "+" {
		return Key{Code: KeyRune, Rune: '+'}, true
	}

	var mods Modifier
	var keyPart string

	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		switch strings.ToLower(part) {
		case "ctrl", "control":
			mods |= ModCtrl
		case "shift":
			mods |= ModShift
		case "alt":
			mods |= ModAlt
		case "super", "meta", "logo":
			mods |= ModSuper
		default:
			if keyPart != "" {
				return Key{}, false
			}
			keyPart = part
		}
	}

	// Allow parsing "ctrl++" where the key is "+".
	if keyPart == "" && strings.HasSuffix(s, "++") {
		keyPart = "+"
	}
	if keyPart == "" {
		return Key{}, false
	}

	if code, ok := keyCodeByName[strings.ToLower(keyPart)]; ok {
		return Key{Code: code, Mods: mods}, true
	}

	if utf8.RuneCountInString(keyPart) != 1 {
		return Key{}, false
	}
	r, _ := utf8.DecodeRuneInString(keyPart)
	if unicode.IsSpace(r) || unicode.IsControl(r) {
		return Key{}, false
	}
	return RuneKey(r, mods).Normalized(), true
}
