// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package response contains Response, the immutable value produced by
// executing a Request.
package response

import (
	"time"

	"github.com/liftgo/lift/status"
)

// A Header is a single response header (name, value) pair, with the
// name in canonical form. Response headers may repeat a name.
type Header struct {
	Name  string
	Value string
}

// A Response is the outcome of executing a single Request. It is
// immutable once delivered, whether via Perform's return value or an
// OnCompleteFunc's second argument.
type Response struct {
	// Status is the diagnostic outcome of the execution. It is always
	// one of the terminal values in status.LiftStatus.
	Status status.LiftStatus

	// StatusCode is the HTTP response status code, or 0 if no HTTP
	// response was ever received.
	StatusCode int

	// Version is the HTTP version actually used for the exchange,
	// e.g. "HTTP/1.1" or "HTTP/2.0".
	Version string

	// Headers holds the response headers. Values of one name keep the
	// order they were received in; the order across different names
	// is not defined.
	Headers []Header

	// Body holds the fully-buffered response body. It is nil if no
	// bytes were received, and may be non-nil with zero length if the
	// response had an empty body.
	Body []byte

	// TotalTime is the wall-clock duration of the whole transfer,
	// from submission (or Perform call) to completion.
	TotalTime time.Duration

	// Redirects is the number of redirects followed during the
	// transfer.
	Redirects int
}

// HeaderGet returns the first value associated with the given header
// name (case-sensitive), or "" if none is present.
func (r *Response) HeaderGet(name string) string {
	for _, h := range r.Headers {
		if h.Name == name {
			return h.Value
		}
	}
	return ""
}

// Success reports whether the execution completed with a valid HTTP
// response, i.e. Status == status.Success.
func (r *Response) Success() bool {
	return r.Status == status.Success
}
