package repository

import "errors"

var (
	ErrMalformedResponse = errors.New("malformed provider response")
	ErrCursorNotAdvanced = errors.New("provider returned the same page token twice")
)
