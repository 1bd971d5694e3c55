// Package clock provides the evaluation time used by schedule computation.
// Taking "now" from a Clock keeps ongoing schedules deterministic under test.
package clock

import (
	"context"
	"time"

	"go.uber.org/fx"
)

type Clock interface {
	Now(ctx context.Context) time.Time
}

var Module = fx.Module("clock",
	fx.Provide(New),
)

func New() Clock {
	return SystemClock{}
}
