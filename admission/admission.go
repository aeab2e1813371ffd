// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package admission throttles how many Executors the event loop hands
// to the transport at once.
//
// The pending-submission queue itself is always unbounded, per the
// specification's backpressure invariant: max_connections caps the
// transport's concurrent connection count, not the queue. A Controller
// is the thing that enforces that cap on the way out of the queue.
package admission

// A Controller gates admission of pending Executors into the
// transport with a hard concurrency cap (max_connections).
//
// A nil *Controller admits everything immediately; NewController
// returns nil when maxConnections is zero, so callers can construct
// one unconditionally and treat "no cap configured" as the zero value.
//
// The loop's only admission call site is its I/O goroutine's drain
// step, which must never block; Controller exposes only the
// non-blocking TryAcquire for that reason, not a blocking Acquire.
type Controller struct {
	sem chan struct{}
}

// NewController returns a Controller that admits at most maxConnections
// Executors concurrently. If maxConnections is zero or negative,
// NewController returns nil, meaning no cap: every submission is
// admitted immediately.
func NewController(maxConnections int) *Controller {
	if maxConnections <= 0 {
		return nil
	}
	return &Controller{sem: make(chan struct{}, maxConnections)}
}

// TryAcquire acquires a slot without blocking, reporting whether one
// was available.
func (c *Controller) TryAcquire() bool {
	if c == nil {
		return true
	}
	select {
	case c.sem <- struct{}{}:
		return true
	default:
		return false
	}
}

// Release returns a slot acquired by a successful TryAcquire.
func (c *Controller) Release() {
	if c == nil {
		return
	}
	<-c.sem
}

// InUse reports how many admission slots are currently held. It is
// intended for tests and diagnostics, not for gating decisions.
func (c *Controller) InUse() int {
	if c == nil {
		return 0
	}
	return len(c.sem)
}
