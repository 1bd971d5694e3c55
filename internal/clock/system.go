package clock

import (
	"context"
	"time"

	simclockctx "github.com/relaycrm/relay/internal/simclock/context"
)

type SystemClock struct{}

func (SystemClock) Now(ctx context.Context) time.Time {
	if t, ok := simclockctx.FromContext(ctx); ok {
		return t
	}
	return time.Now().UTC()
}
