// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package lift

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/liftgo/lift/request"
	"github.com/liftgo/lift/response"
	"github.com/liftgo/lift/share"
	"github.com/liftgo/lift/status"
	"github.com/liftgo/lift/transport"
)

// Perform runs r to completion on the calling goroutine and returns
// the Response, blocking until the transfer finishes, fails, or one of
// r's two independent time budgets elapses.
//
// sh may be nil, in which case Perform uses a private, single-use
// transport for this call only.
//
// Perform never returns nil. On success, Response.Success reports
// true; on failure, Response.Status names the diagnostic reason.
func Perform(r *request.Request, sh *share.Share) *response.Response {
	start := time.Now()

	timesUpCtx := context.Background()
	var timesUpCancel context.CancelFunc = func() {}
	if r.TimesUp > 0 {
		timesUpCtx, timesUpCancel = context.WithTimeout(timesUpCtx, r.TimesUp)
	}
	defer timesUpCancel()

	attemptCtx := timesUpCtx
	var attemptCancel context.CancelFunc = func() {}
	if r.Timeout > 0 {
		attemptCtx, attemptCancel = context.WithTimeout(attemptCtx, r.Timeout)
	}
	defer attemptCancel()

	built, err := transport.Build(attemptCtx, r, sh)
	if err != nil {
		return &response.Response{Status: classifyBuildErr(err), TotalTime: time.Since(start)}
	}

	httpResp, err := built.Doer.Do(built.Req)
	if err != nil {
		return &response.Response{
			Status:    classifyPerformErr(err, timesUpCtx, false),
			Redirects: *built.Redirects,
			TotalTime: time.Since(start),
		}
	}
	defer httpResp.Body.Close()

	body := io.ReadCloser(httpResp.Body)
	if r.TransferProgress != nil {
		body = transport.WrapDownloadProgress(body, r.TransferProgress, httpResp.ContentLength)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return &response.Response{
			Status:     classifyPerformErr(err, timesUpCtx, true),
			StatusCode: httpResp.StatusCode,
			Redirects:  *built.Redirects,
			TotalTime:  time.Since(start),
		}
	}

	return &response.Response{
		Status:     status.Success,
		StatusCode: httpResp.StatusCode,
		Version:    httpResp.Proto,
		Headers:    flattenHeaders(httpResp.Header),
		Body:       data,
		Redirects:  *built.Redirects,
		TotalTime:  time.Since(start),
	}
}

// classifyBuildErr maps a transport.Build failure onto a LiftStatus,
// distinguishing an empty or unparsable URL (status.RequestEmpty) from
// every other configuration failure (status.Error).
func classifyBuildErr(err error) status.LiftStatus {
	if errors.Is(err, transport.ErrRequestEmpty) {
		return status.RequestEmpty
	}
	return status.Error
}

// classifyPerformErr distinguishes a wall-clock time's-up expiry from
// a per-attempt transport timeout when both contexts could plausibly
// have produced the same context.DeadlineExceeded error. The attempt
// context is derived from the time's-up context, so a time's-up
// expiry also surfaces through it; whenever the outer time's-up
// context has already expired, the error is reported as TimesUp.
func classifyPerformErr(err error, timesUpCtx context.Context, headersReceived bool) status.LiftStatus {
	if errors.Is(err, context.DeadlineExceeded) && timesUpCtx.Err() != nil {
		return status.TimesUp
	}
	return status.Classify(err, headersReceived)
}
