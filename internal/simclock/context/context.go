package context

import (
	"context"
	"time"
)

type key string

var simulatedTimeKey key = "simulated_time"

// WithSimulatedTime returns a new context carrying a simulated evaluation time.
func WithSimulatedTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, simulatedTimeKey, t)
}

// FromContext returns the simulated time from the context, if present.
func FromContext(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(simulatedTimeKey).(time.Time)
	return t, ok
}
