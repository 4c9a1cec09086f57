package github

import "context"

// Permits is a counting permit pool capping concurrent remote calls.
// One permit is acquired before any remote call and released exactly once
// on every exit path. The pool carries no other state.
type Permits struct {
	slots chan struct{}
}

// NewPermits creates a pool with the given ceiling.
func NewPermits(ceiling int) *Permits {
	return &Permits{
		slots: make(chan struct{}, ceiling),
	}
}

// Acquire blocks until a permit is available or the context is done.
func (p *Permits) Acquire(ctx context.Context) error {
	select {
	case p.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release returns a permit to the pool.
// Must be paired with a successful Acquire.
func (p *Permits) Release() {
	<-p.slots
}
