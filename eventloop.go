// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package lift

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/liftgo/lift/admission"
	"github.com/liftgo/lift/request"
	"github.com/liftgo/lift/response"
	"github.com/liftgo/lift/share"
	"github.com/liftgo/lift/status"
	"github.com/liftgo/lift/timer"
	"github.com/liftgo/lift/transport"
)

// idleTimerPeriod is how long the loop's select waits when the timer
// index is empty. It is not a deadline for anything; it just bounds
// how long the loop sleeps between checking for new work when nothing
// is armed, so a freshly-armed time's-up entry is never waited on
// indefinitely by a select that was built before it existed.
const idleTimerPeriod = time.Minute

// admissionRetryPeriod is how soon the drain loop reconsiders
// Executors it could not admit because the connection cap was full.
const admissionRetryPeriod = 5 * time.Millisecond

// Options configures a new EventLoop.
type Options struct {
	// ReserveConnections bounds the number of idle connections the
	// loop's transport keeps warm per host. Zero uses the transport's
	// own default.
	ReserveConnections int
	// MaxConnections, if positive, soft-caps the number of Executors
	// concurrently in flight against the transport. It does not bound
	// the pending-submission queue, which is always unbounded.
	MaxConnections int
	// ResolveHosts pre-populates the loop's Share with DNS overrides
	// applied to every request the loop sends, unless overridden on a
	// per-request basis.
	ResolveHosts []request.ResolveHost
	// Share, if non-nil, is used instead of a private one the loop
	// would otherwise create, so callers can pool connections and
	// cookies across more than one EventLoop.
	Share *share.Share
	// Handlers installs event handler chains run at each Executor
	// lifecycle event. A nil Handlers runs no handlers.
	Handlers *HandlerGroup
}

// An EventLoop owns one I/O goroutine and drives every Executor
// submitted to it to completion, independent of the goroutine that
// submitted it.
//
// The zero value is not usable; construct with NewEventLoop.
type EventLoop struct {
	share     *share.Share
	admission *admission.Controller
	handlers  *HandlerGroup
	metrics   *metrics

	mu      sync.Mutex
	pending []*executor

	wake        chan struct{}
	completions chan completionMsg
	stopCh      chan struct{}
	stopped     chan struct{}

	timerIdx *timer.Index

	active   int64
	stopping int32

	handleMu sync.Mutex
	handles  map[uuid.UUID]*executor
}

// NewEventLoop constructs and starts an EventLoop's I/O goroutine.
func NewEventLoop(opts Options) *EventLoop {
	sh := opts.Share
	if sh == nil {
		sh = share.New()
	}
	if opts.ReserveConnections > 0 {
		sh.Transport().MaxIdleConnsPerHost = opts.ReserveConnections
		sh.Transport().MaxIdleConns = opts.ReserveConnections
	}
	for _, rh := range opts.ResolveHosts {
		hostPort := rh.Host
		if rh.Port != 0 {
			hostPort = hostPortJoin(rh.Host, rh.Port)
		}
		ipPort := rh.IP
		if rh.IPPort != 0 {
			ipPort = hostPortJoin(rh.IP, rh.IPPort)
		} else if rh.Port != 0 {
			ipPort = hostPortJoin(rh.IP, rh.Port)
		}
		sh.PreResolve(hostPort, ipPort)
	}

	l := &EventLoop{
		share:       sh,
		admission:   admission.NewController(opts.MaxConnections),
		handlers:    opts.Handlers,
		metrics:     newMetrics(),
		wake:        make(chan struct{}, 1),
		completions: make(chan completionMsg, 16),
		stopCh:      make(chan struct{}),
		stopped:     make(chan struct{}),
		timerIdx:    timer.NewIndex(),
		handles:     make(map[uuid.UUID]*executor),
	}
	go l.run()
	return l
}

// Submit constructs and prepares an Executor for r, queues it for the
// I/O goroutine, and returns whether it was accepted. Submit never
// blocks and is safe to call from any goroutine.
//
// A false return means the loop is stopping; r was not queued and its
// on-complete handler, if any, will never be invoked.
func (l *EventLoop) Submit(r *request.Request) bool {
	if atomic.LoadInt32(&l.stopping) != 0 {
		return false
	}
	atomic.AddInt64(&l.active, 1)

	ex := newExecutor(r)
	l.handlers.run(BeforeConfigure, &Context{Request: r})

	if err := ex.prepare(l.share); err != nil {
		resp := failedToStartResponse(err)
		l.metrics.record(resp)
		atomic.AddInt64(&l.active, -1)
		l.handlers.run(AfterComplete, &Context{Request: r, Response: resp})
		if r.OnComplete != nil {
			r.OnComplete(r, resp)
		}
		return true
	}
	ex.state = statePending

	l.mu.Lock()
	l.pending = append(l.pending, ex)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// ActiveRequestCount returns the number of Executors submitted but not
// yet delivered.
func (l *EventLoop) ActiveRequestCount() uint64 {
	return uint64(atomic.LoadInt64(&l.active))
}

// IsRunning reports whether the loop's I/O goroutine is still active.
// It returns false only after Stop has fully drained and joined it.
func (l *EventLoop) IsRunning() bool {
	select {
	case <-l.stopped:
		return false
	default:
		return true
	}
}

// Stats returns a snapshot of the loop's completed-request counters
// and latency percentiles.
func (l *EventLoop) Stats() Stats {
	return l.metrics.snapshot()
}

// Stop rejects new submissions, waits for every already-accepted
// Executor to finish (successfully, by error, or by time's-up), then
// joins the I/O goroutine. It does not forcibly cancel in-flight work.
//
// Stop is safe to call more than once; later calls simply wait for the
// first to finish.
func (l *EventLoop) Stop() {
	if atomic.CompareAndSwapInt32(&l.stopping, 0, 1) {
		for atomic.LoadInt64(&l.active) > 0 {
			time.Sleep(time.Millisecond)
		}
		close(l.stopCh)
	}
	<-l.stopped
}

// run is the loop's I/O goroutine: the single reader of both the
// completions channel and the wake channel, and the only mutator of
// the timer index after construction.
func (l *EventLoop) run() {
	defer close(l.stopped)
	for {
		wait := idleTimerPeriod
		if e, ok := l.timerIdx.Peek(); ok {
			if d := time.Until(e.Deadline); d > 0 {
				wait = d
			} else {
				wait = 0
			}
		}
		t := time.NewTimer(wait)

		select {
		case <-l.wake:
			t.Stop()
			l.drain()
		case msg := <-l.completions:
			t.Stop()
			l.handleCompletion(msg)
		case <-t.C:
			l.handleTimesUp()
		case <-l.stopCh:
			t.Stop()
			return
		}
	}
}

// drain swaps the pending queue into local scope, then admits each
// Executor to the transport in FIFO order, deferring any that the
// admission controller cannot presently accept.
func (l *EventLoop) drain() {
	l.mu.Lock()
	batch := l.pending
	l.pending = nil
	l.mu.Unlock()

	var deferred []*executor
	for _, ex := range batch {
		if !l.admission.TryAcquire() {
			deferred = append(deferred, ex)
			continue
		}
		l.arm(ex)
	}

	if len(deferred) > 0 {
		l.mu.Lock()
		l.pending = append(deferred, l.pending...)
		l.mu.Unlock()
		time.AfterFunc(admissionRetryPeriod, l.signalWake)
	}
}

// arm registers ex with the timer index (if it carries a time's-up
// budget) before handing it to the transport, so a fast completion can
// never race the index addition, then starts its transfer goroutine.
func (l *EventLoop) arm(ex *executor) {
	if ex.req.TimesUp > 0 {
		ex.timerEntry = l.timerIdx.Add(ex.start.Add(ex.req.TimesUp), ex)
	}
	l.handleMu.Lock()
	l.handles[ex.id] = ex
	l.handleMu.Unlock()

	l.handlers.run(BeforeArm, &Context{Request: ex.req})
	ex.state = stateArmed
	go ex.transfer(l.completions)
}

func (l *EventLoop) handleCompletion(msg completionMsg) {
	if msg.exec.timerEntry != nil {
		l.timerIdx.Remove(msg.exec.timerEntry)
	}
	msg.exec.complete(msg.resp, l)
}

// handleTimesUp fires when the earliest armed deadline elapses. It
// drains every entry due at or before now and delivers a synthetic
// TimesUp completion for each, leaving its transfer goroutine running
// (its later result is discarded by complete); the next
// loop iteration recomputes the wait for whatever remains.
func (l *EventLoop) handleTimesUp() {
	for _, e := range l.timerIdx.DrainDue(time.Now()) {
		ex := e.Value.(*executor)
		resp := timesUpResponse(time.Since(ex.start))
		ex.complete(resp, l)
	}
}

// forget removes ex from the loop's handle table. Called exactly once,
// from the winning branch of executor.complete.
func (l *EventLoop) forget(ex *executor) {
	l.handleMu.Lock()
	delete(l.handles, ex.id)
	l.handleMu.Unlock()
}

func (l *EventLoop) signalWake() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func hostPortJoin(host string, port int) string {
	if port == 0 {
		return host
	}
	return fmt.Sprintf("%s:%d", host, port)
}

// failedToStartResponse classifies a prepare failure the same way
// classifyBuildErr does for the synchronous path: an empty or
// unparsable URL gets RequestEmpty per §7, and every other
// transport.Build failure (bad TLS cert path, failed proxy config, a
// missing MIME-field file per §9) is a runtime status.Error, not
// ErrorFailedToStart — that status is reserved for the multi-handle
// rejecting an already-armed Executor (§4.6 Drain), a rejection this
// package has no path for today, since prepare's failure happens
// before an Executor is ever armed.
func failedToStartResponse(err error) *response.Response {
	if errors.Is(err, transport.ErrRequestEmpty) {
		return &response.Response{Status: status.RequestEmpty}
	}
	return &response.Response{Status: status.Error}
}

func timesUpResponse(elapsed time.Duration) *response.Response {
	return &response.Response{Status: status.TimesUp, TotalTime: elapsed}
}
