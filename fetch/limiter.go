package fetch

import (
	"golang.org/x/time/rate"
	"time"
)

// NewLimiter allows one request per delay. A delay of zero or less does not limit requests.
func NewLimiter(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}
