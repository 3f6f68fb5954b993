package reconcile

import (
	"context"
	"sync"
)

// Pending is the eventual result of a background persistence call.
type Pending[T any] struct {
	done chan struct{}
	once sync.Once
	val  T
	err  error
}

// NewPending creates an unresolved Pending.
func NewPending[T any]() *Pending[T] {
	return &Pending[T]{done: make(chan struct{})}
}

// Resolve stores the result. Only the first call has an effect.
func (p *Pending[T]) Resolve(val T, err error) {
	p.once.Do(func() {
		p.val = val
		p.err = err
		close(p.done)
	})
}

// Done is closed once the result is available.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the result is available or ctx ends.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.val, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Tracker counts in-flight background work.
type Tracker struct {
	wg sync.WaitGroup
}

// Go runs fn in a new goroutine and tracks it until it returns.
func (t *Tracker) Go(fn func()) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		fn()
	}()
}

// Wait blocks until all tracked work has returned.
func (t *Tracker) Wait() {
	t.wg.Wait()
}
