package guard

import "context"

type payloadKey struct{}

// payload wraps the stored value so a JSON null is distinguishable from no
// payload at all.
type payload struct {
	value any
}

// WithPayload stores a checked payload in ctx.
func WithPayload(ctx context.Context, value any) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload{value: value})
}

// Payload returns the payload stored by Middleware.
func Payload(ctx context.Context) (any, bool) {
	if ctx == nil {
		return nil, false
	}
	p, ok := ctx.Value(payloadKey{}).(payload)
	if !ok {
		return nil, false
	}
	return p.value, true
}
