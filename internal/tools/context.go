package tools

import "context"

type contextKey int

const callIDKey contextKey = iota

// WithCallID stores the opaque tool-call identifier on the context so
// handlers can attach it to audit records.
func WithCallID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, callIDKey, id)
}

// CallIDFrom returns the tool-call identifier, or "" when absent.
func CallIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(callIDKey).(string)
	return id
}
