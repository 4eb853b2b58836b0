package errors

import "fmt"

// HTTPError carries the status code a delivery layer should answer with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// NewHTTPErrorf builds an HTTPError with a formatted message.
func NewHTTPErrorf(statusCode int, format string, args ...any) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: fmt.Sprintf(format, args...)}
}
