package pmclient

import "context"

type requestIDContextKey struct{}

// WithRequestID attaches an explicit X-Request-ID value to ctx. The gateway
// generates a fresh UUID per request when none is attached; setting one lets a
// caller correlate a whole user action across several backend calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}
