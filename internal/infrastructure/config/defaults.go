package config

import "github.com/bnema/dumbhint/internal/domain/entity"

// Default configuration constants
const (
	defaultAcceptedHighlightMS = 200 // milliseconds
	defaultQueueCapacity       = 256 // notifications

	// DefaultBusName is the well-known session-bus name of `dumbhint serve`.
	DefaultBusName = "io.github.bnema.DumbHint"
	// DefaultObjectPath is the object exporting the command interface.
	DefaultObjectPath = "/io/github/bnema/DumbHint"
)

// DefaultConfig returns the default configuration values for dumbhint.
func DefaultConfig() *Config {
	return &Config{
		Hints: HintsConfig{
			Alphabet:                 entity.DefaultAlphabet,
			AutoAcceptUniqueHint:     true,
			AcceptedHighlightMS:      defaultAcceptedHighlightMS,
			PassthroughKeyboardInput: false,
			Bindings: BindingsConfig{
				Activatable: "alt+f",
				Editable:    "alt+e",
				Focusable:   "alt+g",
				Yankable:    "alt+y",
				Menuable:    "alt+m",
				Contextable: "alt+c",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Queue: QueueConfig{
			Capacity: defaultQueueCapacity,
		},
		DBus: DBusConfig{
			BusName:    DefaultBusName,
			ObjectPath: DefaultObjectPath,
		},
	}
}
