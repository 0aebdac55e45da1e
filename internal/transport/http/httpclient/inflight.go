package httpclient

import (
	"context"
	"sync"
)

// inflight cancels the previous request of a kind when a new one starts.
type inflight struct {
	mu    sync.Mutex
	calls map[string]*inflightCall
}

type inflightCall struct {
	cancel context.CancelCauseFunc
}

func newInflight() *inflight {
	return &inflight{calls: make(map[string]*inflightCall)}
}

func (f *inflight) begin(ctx context.Context, key string) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(ctx)
	call := &inflightCall{cancel: cancel}

	f.mu.Lock()
	if prev, ok := f.calls[key]; ok {
		prev.cancel(ErrSuperseded)
	}
	f.calls[key] = call
	f.mu.Unlock()

	return ctx, func() {
		f.mu.Lock()
		if f.calls[key] == call {
			delete(f.calls, key)
		}
		f.mu.Unlock()
		cancel(nil)
	}
}
