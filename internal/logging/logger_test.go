package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_JSONWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	log.Debug().Str("k", "v").Msg("hello")

	assert.Contains(t, buf.String(), `"message":"hello"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})
	ctx := WithContext(context.Background(), log)
	ctx = WithComponent(ctx, "controller")
	ctx = WithWindow(ctx, "main")

	FromContext(ctx).Info().Msg("attached")

	assert.Contains(t, buf.String(), `"component":"controller"`)
	assert.Contains(t, buf.String(), `"window":"main"`)
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	log := FromContext(context.Background())
	assert.NotNil(t, log)
	log.Info().Msg("dropped")
}
