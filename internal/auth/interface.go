package auth

import "context"

//go:generate mockery --name Session
type Session interface {
	// AuthURL builds the provider consent URL. No network call is made.
	AuthURL(input AuthURLInput) (string, error)
	// Authenticate exchanges code for a token pair when code is non-empty,
	// otherwise returns the current credential, which may be unauthenticated.
	Authenticate(ctx context.Context, code string) (Credential, error)
}
