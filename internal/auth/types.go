package auth

import (
	"net/http"

	"golang.org/x/oauth2"
)

// DefaultAccessType is used when AuthURLInput.AccessType is empty.
const DefaultAccessType = "offline"

// Credential is the authenticated handle produced by a token exchange.
// The zero value is an unauthenticated credential.
type Credential struct {
	Token        *oauth2.Token
	RefreshToken string
	HTTPClient   *http.Client
}

// Authenticated reports whether the credential carries an access token.
func (c Credential) Authenticated() bool {
	return c.Token != nil && c.Token.AccessToken != "" && c.HTTPClient != nil
}

// AuthURLInput is the input for building the consent URL.
type AuthURLInput struct {
	AccessType string // "offline" or "online"
	Scopes     []string
}
