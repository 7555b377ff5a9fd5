package fixture

import (
	_ "embed"
	"fmt"
)

//go:embed demo.toml
var demoDocument string

// Demo returns a fresh copy of the built-in demo application tree.
func Demo() *Tree {
	t, err := Parse(demoDocument)
	if err != nil {
		panic(fmt.Sprintf("fixture.Demo: embedded document is invalid: %v", err))
	}
	return t
}
