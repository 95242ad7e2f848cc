// Package requestctx carries the per-request correlation id, so layers
// below the router can tag their output without importing the HTTP
// middleware.
package requestctx

import "context"

// Header is the wire name of the correlation id.
const Header = "X-Request-ID"

type ctxKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// GetRequestID returns the correlation id, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	value, _ := ctx.Value(ctxKey{}).(string)
	return value
}
