package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"calendar-attendees/internal/auth"
	"calendar-attendees/pkg/log"
)

// Config is the OAuth2 client registration used by the session.
type Config struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	// Endpoint defaults to google.Endpoint when both URLs are empty.
	Endpoint oauth2.Endpoint
}

type implSession struct {
	l        log.Logger
	oauth    *oauth2.Config
	newState func() string

	mu      sync.RWMutex
	current auth.Credential
}

// New creates an auth.Session backed by golang.org/x/oauth2.
func New(l log.Logger, cfg Config) (auth.Session, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.CallbackURL == "" {
		return nil, errors.New("auth/session: client id, client secret and callback url are required")
	}

	endpoint := cfg.Endpoint
	if endpoint.AuthURL == "" && endpoint.TokenURL == "" {
		endpoint = google.Endpoint
	}

	return &implSession{
		l: l,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Endpoint:     endpoint,
		},
		newState: uuid.NewString,
	}, nil
}
