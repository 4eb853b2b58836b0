package usecase_test

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"

	"calendar-attendees/internal/auth"
	"calendar-attendees/internal/calendar/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func authedCredential() auth.Credential {
	return auth.Credential{
		Token:        &oauth2.Token{AccessToken: "at"},
		RefreshToken: "rt",
		HTTPClient:   http.DefaultClient,
	}
}

// mockSession implements auth.Session
type mockSession struct {
	cred     auth.Credential
	err      error
	gotCodes []string
}

func (m *mockSession) AuthURL(input auth.AuthURLInput) (string, error) {
	return "https://accounts.example.com/auth", nil
}

func (m *mockSession) Authenticate(ctx context.Context, code string) (auth.Credential, error) {
	m.gotCodes = append(m.gotCodes, code)
	return m.cred, m.err
}

// mockRepo implements repository.Repository. Calendar pages are served in
// order; event pages are served per calendar in order.
type mockRepo struct {
	calendarPages []repository.CalendarPage
	calendarErrAt int // 1-based page index that fails, 0 = never
	calendarErr   error

	eventPages map[string][]repository.EventPage
	eventErrAt map[string]int
	eventErr   error

	calendarCalls []repository.ListCalendarsOptions
	eventCalls    []repository.ListEventsOptions
}

func (m *mockRepo) ListCalendarsPage(ctx context.Context, cred auth.Credential, opt repository.ListCalendarsOptions) (repository.CalendarPage, error) {
	m.calendarCalls = append(m.calendarCalls, opt)
	n := len(m.calendarCalls)
	if m.calendarErrAt == n {
		return repository.CalendarPage{}, m.calendarErr
	}
	if n > len(m.calendarPages) {
		return repository.CalendarPage{}, nil
	}
	return m.calendarPages[n-1], nil
}

func (m *mockRepo) ListEventsPage(ctx context.Context, cred auth.Credential, opt repository.ListEventsOptions) (repository.EventPage, error) {
	m.eventCalls = append(m.eventCalls, opt)
	n := 0
	for _, c := range m.eventCalls {
		if c.CalendarID == opt.CalendarID {
			n++
		}
	}
	if m.eventErrAt != nil && m.eventErrAt[opt.CalendarID] == n {
		return repository.EventPage{}, m.eventErr
	}
	pages := m.eventPages[opt.CalendarID]
	if n > len(pages) {
		return repository.EventPage{}, nil
	}
	return pages[n-1], nil
}
