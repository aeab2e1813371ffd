// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package lift

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/liftgo/lift/request"
	"github.com/liftgo/lift/response"
	"github.com/liftgo/lift/share"
	"github.com/liftgo/lift/status"
	"github.com/liftgo/lift/timer"
	"github.com/liftgo/lift/transport"
)

// executorState names a point in an Executor's lifecycle. It exists
// for diagnostics; nothing branches on it.
type executorState int32

const (
	stateCreated executorState = iota
	statePrepared
	statePending
	stateArmed
	stateCompleting
	stateDelivered
)

// An executor is owned exclusively by the EventLoop between submission
// and completion. It binds one Request to one transport attempt.
//
// The curl multi-handle this design is modeled on hands the loop one
// non-blocking socket per easy handle and polls all of them from a
// single thread. net/http's Transport already multiplexes non-blocking
// I/O internally through the Go runtime's netpoller, so an executor's
// transfer runs on its own goroutine instead — the Go analogue of one
// non-blocking socket — and every transfer goroutine funnels its
// result back through the loop's single completions channel, which
// only the loop's own goroutine ever reads. That channel read is this
// design's I/O thread.
type executor struct {
	id    uuid.UUID
	req   *request.Request
	built *transport.Built

	buildCtx context.Context
	cancel   context.CancelFunc

	start      time.Time
	timerEntry *timer.Entry

	state executorState
	once  sync.Once
}

func newExecutor(r *request.Request) *executor {
	outerCtx, outerCancel := context.WithCancel(context.Background())
	buildCtx := outerCtx
	timeoutCancel := func() {}
	if r.Timeout > 0 {
		var tc context.CancelFunc
		buildCtx, tc = context.WithTimeout(outerCtx, r.Timeout)
		timeoutCancel = tc
	}
	return &executor{
		id:       uuid.New(),
		req:      r,
		buildCtx: buildCtx,
		cancel: func() {
			timeoutCancel()
			outerCancel()
		},
		start: time.Now(),
		state: stateCreated,
	}
}

// prepare configures the transport for this executor's Request. It
// runs on the submitting goroutine, before the executor is queued.
func (ex *executor) prepare(sh *share.Share) error {
	built, err := transport.Build(ex.buildCtx, ex.req, sh)
	if err != nil {
		return err
	}
	ex.built = built
	ex.state = statePrepared
	return nil
}

// transfer runs the HTTP attempt and sends the result to out. It never
// panics on transport errors; it turns them into a diagnostic Response
// instead.
//
// cancel runs only once the attempt itself has actually finished, win
// or lose: a time's-up completion delivered while this is still
// running must not tear down buildCtx out from under the in-flight
// Do/ReadAll call, since time's-up is a delivery short-circuit, not a
// socket-level cancellation (§4.5, §9). complete never calls cancel
// itself for exactly this reason.
func (ex *executor) transfer(out chan<- completionMsg) {
	defer ex.cancel()
	out <- completionMsg{exec: ex, resp: ex.doTransfer()}
}

func (ex *executor) doTransfer() *response.Response {
	httpResp, err := ex.built.Doer.Do(ex.built.Req)
	if err != nil {
		return &response.Response{Status: status.Classify(err, false), Redirects: *ex.built.Redirects}
	}
	defer httpResp.Body.Close()

	body := io.ReadCloser(httpResp.Body)
	if ex.req.TransferProgress != nil {
		body = transport.WrapDownloadProgress(body, ex.req.TransferProgress, httpResp.ContentLength)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return &response.Response{
			Status:     status.Classify(err, true),
			StatusCode: httpResp.StatusCode,
			Redirects:  *ex.built.Redirects,
		}
	}
	return &response.Response{
		Status:     status.Success,
		StatusCode: httpResp.StatusCode,
		Version:    httpResp.Proto,
		Headers:    flattenHeaders(httpResp.Header),
		Body:       data,
		Redirects:  *ex.built.Redirects,
	}
}

// complete delivers resp exactly once. If another completion already
// won the race — the normal transport-completion path against the
// time's-up path — this call is a no-op beyond having already been
// removed from the timer index by its caller.
//
// complete does not cancel ex's context; that happens only when the
// transfer goroutine itself returns (see transfer), so a time's-up
// delivery here never aborts a still-running transfer.
func (ex *executor) complete(resp *response.Response, l *EventLoop) {
	won := false
	ex.once.Do(func() { won = true })
	if !won {
		return
	}
	ex.state = stateCompleting
	l.admission.Release()
	resp.TotalTime = time.Since(ex.start)

	l.forget(ex)

	c := &Context{Request: ex.req, Response: resp}
	l.handlers.run(AfterComplete, c)
	l.metrics.record(resp)

	ex.state = stateDelivered
	atomic.AddInt64(&l.active, -1)
	if ex.req.OnComplete != nil {
		ex.req.OnComplete(ex.req, resp)
	}
}

type completionMsg struct {
	exec *executor
	resp *response.Response
}

func flattenHeaders(h map[string][]string) []response.Header {
	var out []response.Header
	for name, values := range h {
		for _, v := range values {
			out = append(out, response.Header{Name: name, Value: v})
		}
	}
	return out
}
