package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every event logged through the returned context with
// the subsystem that emitted it.
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

// WithWindow tags events with the name of the top-level window they concern.
func WithWindow(ctx context.Context, window string) context.Context {
	return withStr(ctx, "window", window)
}

func withStr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}
