// Package ratelimit provides per-IP rate limiting middleware for the
// credential endpoints.
package ratelimit

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// builds a gin middleware limiting each client IP to the given rate,
// e.g. "10-M" for ten requests per minute. The state lives in process
// memory; limits apply per server instance.
func Middleware(formatted string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", formatted, err)
	}

	store := memory.NewStore()

	return mgin.NewMiddleware(limiter.New(store, rate)), nil
}
