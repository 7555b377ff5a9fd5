package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_Short(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{name: "zero", info: Info{}, want: "dev"},
		{name: "unknown commit", info: Info{Version: "v0.3.0", Commit: "unknown"}, want: "v0.3.0"},
		{name: "long commit", info: Info{Version: "v0.3.0", Commit: "0123456789abcdef"}, want: "v0.3.0 (0123456)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Short())
		})
	}
}
