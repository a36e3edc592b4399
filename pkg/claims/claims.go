package claims

import "context"

type contextKey string

const (
	TokenContextKey contextKey = "token"
)

// FromContext returns the claims the session middleware attached to the
// request, if any.
func FromContext(ctx context.Context) (map[string]any, bool) {
	decoded, ok := ctx.Value(TokenContextKey).(map[string]any)
	return decoded, ok
}

// NewContext is the inverse of FromContext; the middleware and tests use
// it to attach verified claims.
func NewContext(ctx context.Context, decoded map[string]any) context.Context {
	return context.WithValue(ctx, TokenContextKey, decoded)
}
