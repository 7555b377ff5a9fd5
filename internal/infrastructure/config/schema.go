package config

import (
	"fmt"
	"time"

	"github.com/bnema/dumbhint/internal/domain/entity"
)

// Config represents the complete configuration for dumbhint.
type Config struct {
	// Hints configures the hinting engine.
	Hints   HintsConfig   `mapstructure:"hints" toml:"hints" json:"hints"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Queue bounds the cross-thread notification queue.
	Queue QueueConfig `mapstructure:"queue" toml:"queue" json:"queue"`
	// DBus configures the session-bus command surface of `dumbhint serve`.
	DBus DBusConfig `mapstructure:"dbus" toml:"dbus" json:"dbus"`
}

// HintsConfig holds the settings handed to the hint controller.
type HintsConfig struct {
	// Alphabet lists the characters hint codes are built from, most comfortable first.
	Alphabet string `mapstructure:"alphabet" toml:"alphabet" json:"alphabet" jsonschema:"minLength=2,default=asdfghjkl"`
	// AutoAcceptUniqueHint accepts a hint as soon as it is the only one left.
	AutoAcceptUniqueHint bool `mapstructure:"auto_accept_unique_hint" toml:"auto_accept_unique_hint" json:"auto_accept_unique_hint"`
	// AcceptedHighlightMS is how long an accepted hint stays highlighted. 0 disables it.
	AcceptedHighlightMS int `mapstructure:"accepted_highlight_ms" toml:"accepted_highlight_ms" json:"accepted_highlight_ms" jsonschema:"minimum=0"`
	// PassthroughKeyboardInput lets keys reach an element entered through an edit hint.
	PassthroughKeyboardInput bool `mapstructure:"passthrough_keyboard_input" toml:"passthrough_keyboard_input" json:"passthrough_keyboard_input"`
	// Bindings maps each hint mode to its shortcut. An empty string unbinds the mode.
	Bindings BindingsConfig `mapstructure:"bindings" toml:"bindings" json:"bindings"`
}

// BindingsConfig holds one shortcut per hint mode, e.g. "alt+f".
type BindingsConfig struct {
	Activatable string `mapstructure:"activatable" toml:"activatable" json:"activatable"`
	Editable    string `mapstructure:"editable" toml:"editable" json:"editable"`
	Focusable   string `mapstructure:"focusable" toml:"focusable" json:"focusable"`
	Yankable    string `mapstructure:"yankable" toml:"yankable" json:"yankable"`
	Menuable    string `mapstructure:"menuable" toml:"menuable" json:"menuable"`
	Contextable string `mapstructure:"contextable" toml:"contextable" json:"contextable"`
}

// LoggingConfig controls process logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// QueueConfig controls notification marshaling.
type QueueConfig struct {
	Capacity int `mapstructure:"capacity" toml:"capacity" json:"capacity" jsonschema:"minimum=1"`
}

// DBusConfig controls the session-bus command surface.
type DBusConfig struct {
	BusName    string `mapstructure:"bus_name" toml:"bus_name" json:"bus_name"`
	ObjectPath string `mapstructure:"object_path" toml:"object_path" json:"object_path"`
}

// BindingMap returns the bindings keyed by hint mode.
func (b BindingsConfig) BindingMap() map[entity.HintMode]string {
	return map[entity.HintMode]string{
		entity.HintActivatable: b.Activatable,
		entity.HintEditable:    b.Editable,
		entity.HintFocusable:   b.Focusable,
		entity.HintYankable:    b.Yankable,
		entity.HintMenuable:    b.Menuable,
		entity.HintContextable: b.Contextable,
	}
}

// Settings converts the hints section into validated engine settings.
func (c *Config) Settings() (entity.Settings, error) {
	if c == nil {
		return entity.Settings{}, fmt.Errorf("config is nil")
	}
	return entity.NewSettings(entity.SettingsInput{
		Alphabet:                 c.Hints.Alphabet,
		AutoAcceptUniqueHint:     c.Hints.AutoAcceptUniqueHint,
		AcceptedHighlight:        time.Duration(c.Hints.AcceptedHighlightMS) * time.Millisecond,
		Bindings:                 c.Hints.Bindings.BindingMap(),
		PassthroughKeyboardInput: c.Hints.PassthroughKeyboardInput,
	})
}
