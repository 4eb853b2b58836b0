package google

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"calendar-attendees/internal/auth"
	"calendar-attendees/internal/calendar"
	"calendar-attendees/internal/calendar/repository"
	"calendar-attendees/pkg/gcalendar"
	"calendar-attendees/pkg/log"
)

const (
	opCalendarList = "calendarList.list"
	opEventList    = "events.list"
)

type implRepository struct {
	l    log.Logger
	opts []option.ClientOption
}

// New creates a Google Calendar backed Repository. opts are passed to every
// calendar service built from a credential.
func New(l log.Logger, opts ...option.ClientOption) repository.Repository {
	return &implRepository{l: l, opts: opts}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("calendar/repository/google.%s", method)
}

func (r *implRepository) client(ctx context.Context, cred auth.Credential) (*gcalendar.Client, error) {
	if !cred.Authenticated() {
		return nil, auth.ErrNotAuthenticated
	}
	return gcalendar.NewClientFromHTTP(ctx, cred.HTTPClient, r.opts...)
}

// providerError wraps err as a *calendar.ProviderError, lifting the HTTP
// status out of a googleapi.Error when there is one. Nil list entries are
// reported as a malformed response.
func providerError(op, calendarID string, err error) error {
	if errors.Is(err, gcalendar.ErrNilItem) {
		err = fmt.Errorf("%w: %w", repository.ErrMalformedResponse, err)
	}
	pErr := &calendar.ProviderError{Op: op, CalendarID: calendarID, Err: err}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		pErr.StatusCode = apiErr.Code
	}
	return pErr
}
