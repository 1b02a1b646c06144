package store

import (
	"context"
	"sync"
)

// promise is a one-shot completion bridge between the store goroutine and a
// waiting caller. It is fulfilled exactly once, from exactly one of the
// success or failure paths; the done flag makes a second completion a no-op
// instead of a panic or a double send.
type promise struct {
	mu   sync.Mutex
	done bool
	ch   chan error
}

func newPromise() *promise {
	return &promise{ch: make(chan error, 1)}
}

// complete fulfils the promise with err (nil on success). It reports whether
// this call was the one that completed it.
func (p *promise) complete(err error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return false
	}
	p.done = true
	p.ch <- err
	return true
}

// wait blocks until the promise is fulfilled or ctx is done. An abandoned
// wait does not cancel the work behind the promise; it runs to completion.
func (p *promise) wait(ctx context.Context) error {
	select {
	case err := <-p.ch:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
