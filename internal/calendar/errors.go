package calendar

import (
	"errors"
	"fmt"
)

var (
	ErrProvider    = errors.New("calendar provider request failed")
	ErrMissingCode = errors.New("authorization code is required")
)

// ProviderError describes a failed provider list call. It matches ErrProvider
// with errors.Is.
type ProviderError struct {
	Op         string // "calendarList.list" or "events.list"
	CalendarID string
	StatusCode int // 0 when no HTTP status was received
	Err        error
}

func (e *ProviderError) Error() string {
	msg := e.Op
	if e.CalendarID != "" {
		msg += fmt.Sprintf(" (calendar %s)", e.CalendarID)
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s: %s: %v", ErrProvider.Error(), msg, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}
