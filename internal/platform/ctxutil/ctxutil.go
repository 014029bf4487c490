// Package ctxutil threads per-request identifiers through context so the
// request logger and services can tag their output without touching gin.
package ctxutil

import "context"

type ctxKey int

const traceKey ctxKey = iota

// TraceData identifies one request across log lines and trace spans.
type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, td TraceData) context.Context {
	return context.WithValue(ctx, traceKey, td)
}

// GetTraceData returns the identifiers attached by the trace middleware;
// ok is false outside an HTTP request.
func GetTraceData(ctx context.Context) (TraceData, bool) {
	td, ok := ctx.Value(traceKey).(TraceData)
	return td, ok
}
