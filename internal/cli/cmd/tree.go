package cmd

import (
	"github.com/bnema/dumbhint/internal/infrastructure/fixture"
)

var treePath string

// loadTree returns the fixture given by --tree, else the built-in demo window.
func loadTree() (*fixture.Tree, error) {
	if treePath == "" {
		return fixture.Demo(), nil
	}
	return fixture.Load(treePath)
}
