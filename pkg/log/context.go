package log

import "context"

const (
	ModeProduction = "production"
	EncodingJSON   = "json"

	FieldRequestID = "request_id"
)

type requestIDKey struct{}

// SetRequestID returns a copy of ctx carrying the request ID.
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
