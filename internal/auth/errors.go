package auth

import "errors"

var (
	ErrInvalidScope      = errors.New("invalid authorization scope")
	ErrInvalidAccessType = errors.New("invalid access type")
	ErrExchangeRejected  = errors.New("authorization code exchange rejected")
	ErrNotAuthenticated  = errors.New("credential is not authenticated")
)
