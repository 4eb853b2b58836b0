package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-attendees/internal/auth"
	"calendar-attendees/internal/calendar"
	calendarHTTP "calendar-attendees/internal/calendar/delivery/http"
	"calendar-attendees/internal/middleware"
	"calendar-attendees/pkg/log"
	"calendar-attendees/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockUseCase implements calendar.UseCase
type mockUseCase struct {
	out      calendar.AggregateOutput
	err      error
	gotInput calendar.AggregateInput
	calls    int
}

func (m *mockUseCase) ListAllCalendars(ctx context.Context, cred auth.Credential) ([]calendar.CalendarListEntry, error) {
	return nil, nil
}

func (m *mockUseCase) ListEvents(ctx context.Context, cred auth.Credential, input calendar.ListEventsInput) ([]calendar.Event, error) {
	return nil, nil
}

func (m *mockUseCase) Aggregate(ctx context.Context, input calendar.AggregateInput) (calendar.AggregateOutput, error) {
	m.calls++
	m.gotInput = input
	return m.out, m.err
}

// mockSession implements auth.Session
type mockSession struct {
	url      string
	err      error
	gotInput auth.AuthURLInput
}

func (m *mockSession) AuthURL(input auth.AuthURLInput) (string, error) {
	m.gotInput = input
	return m.url, m.err
}

func (m *mockSession) Authenticate(ctx context.Context, code string) (auth.Credential, error) {
	return auth.Credential{}, nil
}

func newRouter(uc calendar.UseCase, session auth.Session) *gin.Engine {
	r := gin.New()
	h := calendarHTTP.New(log.NewNop(), uc, session, auth.AuthURLInput{
		AccessType: "offline",
		Scopes:     []string{"https://www.googleapis.com/auth/calendar.readonly"},
	})
	calendarHTTP.RegisterRoutes(r, h, middleware.New(log.NewNop(), 0))
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestIndex(t *testing.T) {
	t.Run("Serves the authorization link", func(t *testing.T) {
		session := &mockSession{url: "https://accounts.google.com/o/oauth2/auth?client_id=abc&state=s"}
		w := get(newRouter(&mockUseCase{}, session), "/")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), `href="https://accounts.google.com/o/oauth2/auth?client_id=abc&amp;state=s"`)
		assert.Equal(t, "offline", session.gotInput.AccessType)
	})

	t.Run("Session failure", func(t *testing.T) {
		session := &mockSession{err: auth.ErrInvalidScope}
		w := get(newRouter(&mockUseCase{}, session), "/")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCallback(t *testing.T) {
	start := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	t.Run("Returns events and attendees", func(t *testing.T) {
		uc := &mockUseCase{out: calendar.AggregateOutput{
			Events: []calendar.Event{{
				ID:         "e1",
				CalendarID: "cal-a",
				Start:      start,
				End:        start.Add(time.Hour),
				Attendees:  []calendar.Attendee{{Email: "alice@x", DisplayName: "Alice", ResponseStatus: "accepted"}},
			}},
			Attendees: []calendar.UniqueAttendee{{Email: "alice@x", DisplayName: "Alice"}},
		}}
		w := get(newRouter(uc, &mockSession{}), "/auth/google/callback?code=abc&exclude=me@x&exclude=bot@x")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "abc", uc.gotInput.Code)
		assert.Equal(t, []string{"me@x", "bot@x"}, uc.gotInput.ExcludeEmails)

		var body struct {
			Events []struct {
				ID        string `json:"id"`
				Attendees []struct {
					Email string `json:"email"`
				} `json:"attendees"`
			} `json:"events"`
			Attendees []struct {
				Email       string `json:"email"`
				DisplayName string `json:"displayName"`
			} `json:"attendees"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Events, 1)
		assert.Equal(t, "e1", body.Events[0].ID)
		assert.Equal(t, "alice@x", body.Events[0].Attendees[0].Email)
		require.Len(t, body.Attendees, 1)
		assert.Equal(t, "Alice", body.Attendees[0].DisplayName)
	})

	t.Run("Empty result encodes empty arrays", func(t *testing.T) {
		w := get(newRouter(&mockUseCase{}, &mockSession{}), "/auth/google/callback?code=abc")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"events": [], "attendees": []}`, w.Body.String())
	})

	cases := []struct {
		name   string
		target string
		err    error
		status int
		calls  int
	}{
		{name: "Missing code", target: "/auth/google/callback", status: http.StatusBadRequest},
		{name: "Consent denied", target: "/auth/google/callback?error=access_denied", status: http.StatusBadRequest},
		{name: "Exchange rejected", target: "/auth/google/callback?code=old", err: auth.ErrExchangeRejected, status: http.StatusUnauthorized, calls: 1},
		{
			name:   "Provider failure",
			target: "/auth/google/callback?code=abc",
			err:    &calendar.ProviderError{Op: "events.list", CalendarID: "cal-b", StatusCode: 500, Err: errors.New("backend")},
			status: http.StatusBadGateway,
			calls:  1,
		},
		{name: "Unexpected failure", target: "/auth/google/callback?code=abc", err: errors.New("boom"), status: http.StatusInternalServerError, calls: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{err: tc.err}
			w := get(newRouter(uc, &mockSession{}), tc.target)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.calls, uc.calls)
		})
	}
}

func TestCallbackProviderMessage(t *testing.T) {
	t.Run("Names the failed call and its status", func(t *testing.T) {
		uc := &mockUseCase{err: &calendar.ProviderError{Op: "events.list", CalendarID: "cal-b", StatusCode: 403, Err: errors.New("forbidden")}}
		w := get(newRouter(uc, &mockSession{}), "/auth/google/callback?code=abc")

		require.Equal(t, http.StatusBadGateway, w.Code)
		var resp response.Resp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "calendar provider request failed: events.list returned status 403", resp.Message)
	})

	t.Run("No status received", func(t *testing.T) {
		uc := &mockUseCase{err: &calendar.ProviderError{Op: "calendarList.list", Err: errors.New("connection reset")}}
		w := get(newRouter(uc, &mockSession{}), "/auth/google/callback?code=abc")

		require.Equal(t, http.StatusBadGateway, w.Code)
		var resp response.Resp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "calendar provider request failed", resp.Message)
	})
}

func TestCallbackRateLimit(t *testing.T) {
	r := gin.New()
	h := calendarHTTP.New(log.NewNop(), &mockUseCase{}, &mockSession{}, auth.AuthURLInput{})
	calendarHTTP.RegisterRoutes(r, h, middleware.New(log.NewNop(), 10))

	assert.Equal(t, http.StatusOK, get(r, "/auth/google/callback?code=a").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/auth/google/callback?code=a").Code)
	assert.Equal(t, http.StatusOK, get(r, "/").Code)
}
