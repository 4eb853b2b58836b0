package middleware

import (
	"calendar-attendees/pkg/log"
)

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

// New builds the shared middleware set. callbackPerMin <= 0 disables rate limiting.
func New(l log.Logger, callbackPerMin int) Middleware {
	mw := Middleware{l: l}
	if callbackPerMin > 0 {
		mw.rateLimiter = newRateLimiter(callbackPerMin)
	}
	return mw
}
