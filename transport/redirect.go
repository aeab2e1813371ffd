// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"fmt"
	"net/http"

	"github.com/liftgo/lift/request"
)

// buildCheckRedirect returns the CheckRedirect function to install on
// an *http.Client, implementing §4.1's follow-redirects contract:
// disabled means stop after zero redirects; max < 0 means unbounded;
// max == 0 means none; max > 0 is an exact bound. It also returns a
// counter that the returned function updates with the number of
// redirects actually followed so far, for the caller to read back into
// Response.Redirects once the transfer completes.
func buildCheckRedirect(r *request.Request) (func(req *http.Request, via []*http.Request) error, *int) {
	count := new(int)
	if !r.FollowRedirects || r.MaxRedirects == 0 {
		return func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}, count
	}
	if r.MaxRedirects < 0 {
		return func(_ *http.Request, via []*http.Request) error {
			*count = len(via)
			return nil
		}, count
	}
	max := r.MaxRedirects
	return func(_ *http.Request, via []*http.Request) error {
		if len(via) > max {
			return fmt.Errorf("transport: stopped after %d redirects", max)
		}
		*count = len(via)
		return nil
	}, count
}
