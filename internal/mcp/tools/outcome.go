package tools

import (
	"context"
	"sync/atomic"
)

// Outcome records what happened to the backend call behind one tool call.
// Backend failures are returned to the caller as text, so this is the only
// place they remain visible as failures.
type Outcome struct {
	backendFailed atomic.Bool
}

func (o *Outcome) BackendFailed() bool {
	return o != nil && o.backendFailed.Load()
}

type outcomeKey struct{}

// WithOutcome attaches a fresh Outcome to ctx for the handler to fill in.
func WithOutcome(ctx context.Context) (context.Context, *Outcome) {
	o := &Outcome{}
	return context.WithValue(ctx, outcomeKey{}, o), o
}

func markBackendFailed(ctx context.Context) {
	if o, ok := ctx.Value(outcomeKey{}).(*Outcome); ok {
		o.backendFailed.Store(true)
	}
}
