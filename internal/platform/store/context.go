package store

import "context"

type (
	ownerKey struct{}
	reqIDKey struct{}
)

// WithOwner attaches an owner id to the context
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

// OwnerID retrieves an owner id from context if present
func OwnerID(ctx context.Context) (string, bool) {
	v := ctx.Value(ownerKey{})
	if v == nil {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// WithRequestID attaches a request id to the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, reqIDKey{}, id)
}

// RequestID retrieves a request id from context if present
func RequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(reqIDKey{})
	if v == nil {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}
