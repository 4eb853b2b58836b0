package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"calendar-attendees/internal/auth"
)

// AuthURL builds the consent URL for the requested scopes.
func (s *implSession) AuthURL(input auth.AuthURLInput) (string, error) {
	if len(input.Scopes) == 0 {
		return "", auth.ErrInvalidScope
	}
	for _, scope := range input.Scopes {
		if strings.TrimSpace(scope) == "" {
			return "", auth.ErrInvalidScope
		}
	}

	accessType := input.AccessType
	if accessType == "" {
		accessType = auth.DefaultAccessType
	}
	if accessType != "offline" && accessType != "online" {
		return "", fmt.Errorf("%w: %q", auth.ErrInvalidAccessType, accessType)
	}

	cfg := *s.oauth
	cfg.Scopes = input.Scopes
	return cfg.AuthCodeURL(s.newState(), oauth2.SetAuthURLParam("access_type", accessType)), nil
}

// Authenticate exchanges code once. The returned credential never refreshes:
// it is valid for the lifetime of the issued access token.
func (s *implSession) Authenticate(ctx context.Context, code string) (auth.Credential, error) {
	if code == "" {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.current, nil
	}

	tok, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			s.l.Warnf(ctx, "auth/session.Authenticate: exchange rejected: %v", err)
			return auth.Credential{}, fmt.Errorf("%w: %v", auth.ErrExchangeRejected, err)
		}
		s.l.Errorf(ctx, "auth/session.Authenticate: exchange failed: %v", err)
		return auth.Credential{}, fmt.Errorf("auth/session.Authenticate: %w", err)
	}

	cred := auth.Credential{
		Token:        tok,
		RefreshToken: tok.RefreshToken,
		HTTPClient:   oauth2.NewClient(ctx, oauth2.StaticTokenSource(tok)),
	}

	s.mu.Lock()
	s.current = cred
	s.mu.Unlock()

	s.l.Infof(ctx, "auth/session.Authenticate: token issued, expires at %s, refresh token present: %t",
		tok.Expiry.Format(time.RFC3339), tok.RefreshToken != "")
	return cred, nil
}
