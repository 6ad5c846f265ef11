// Package context carries request identity through the call chain.
package context

import "context"

// Trace identifies a single request. The trace id correlates log
// entries across services; the request id is unique to this request.
type Trace struct {
	TraceID   string
	RequestID string
}

type traceKey struct{}

// WithTrace returns a context carrying the trace.
func WithTrace(ctx context.Context, t *Trace) context.Context {
	return context.WithValue(ctx, traceKey{}, t)
}

// GetTrace returns the trace carried by ctx, or nil.
func GetTrace(ctx context.Context) *Trace {
	t, _ := ctx.Value(traceKey{}).(*Trace)
	return t
}

// RequestID returns the request id carried by ctx, or the empty string.
func RequestID(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.RequestID
	}
	return ""
}
