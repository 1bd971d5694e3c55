package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	simclockctx "github.com/relaycrm/relay/internal/simclock/context"
	"go.uber.org/zap"
)

const simulatedTimeHeader = "X-Simulated-Time"

// simulatedClock lets test environments pin the evaluation "now" for a
// single request. Gated behind config; never enabled in production.
func simulatedClock(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(simulatedTimeHeader))
		if raw == "" {
			c.Next()
			return
		}

		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			log.Warn("ignoring malformed simulated time header", zap.String("value", raw))
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(simclockctx.WithSimulatedTime(c.Request.Context(), t.UTC()))
		c.Next()
	}
}
