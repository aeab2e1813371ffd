// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package request contains Request, the immutable-after-submission
// value describing one HTTP transaction's inputs, along with its
// builder methods and supporting configuration types (TLS, proxy,
// MIME fields, DNS pre-resolution).
//
// A Request is built with NewRequest and then customized with its
// builder methods before being handed to Perform or an EventLoop's
// Submit method. Builder methods mutate the Request in place and
// return nothing, matching the value-object contract of the C++
// library this module's behavior is modeled on.
package request

import (
	"fmt"
	"net/url"
	"time"

	"github.com/liftgo/lift/response"
)

// A Header is a single request header (name, value) pair in the order
// it was added. A Value of "" encodes "suppress the transport's
// default header of this Name", per §4.1.
type Header struct {
	Name  string
	Value string
}

// OnCompleteFunc is invoked exactly once, on the event loop's I/O
// goroutine, when an asynchronously submitted Request's execution
// reaches a terminal state. It receives back ownership of both the
// Request and its Response. The one exception is a Request whose
// transport configuration fails inside Submit: its OnCompleteFunc is
// invoked on the goroutine that called Submit, before Submit returns.
type OnCompleteFunc func(*Request, *response.Response)

// TransferProgressFunc is invoked periodically during a transfer with
// cumulative byte counts. Returning false requests that the transfer
// be aborted; this maps onto CONNECT_ERROR or DOWNLOAD_ERROR at
// delivery, since the specification has no per-request cancel API
// beyond time's-up.
type TransferProgressFunc func(uploaded, uploadTotal, downloaded, downloadTotal int64) (keepGoing bool)

// A Request describes one HTTP transaction's inputs. Its zero value,
// after NewRequest, is a minimal well-formed GET request; every other
// field is optional.
//
// Request is intended to be built up with the builder methods below
// on a single goroutine and then handed off, unshared, either to
// Perform (which does not retain it) or to an EventLoop's Submit
// method (which takes ownership of it until the on-complete handler
// fires). A Request must not be mutated concurrently with an
// in-flight execution.
type Request struct {
	URL     string
	Method  string
	Version HTTPVersion

	Timeout time.Duration // 0 means "no transport timeout"
	TimesUp time.Duration // 0 means "no wall-clock budget"

	FollowRedirects bool
	MaxRedirects    int // -1 = unbounded, 0 = none, >0 = exact bound

	TLS TLSConfig

	Proxy *Proxy

	AcceptEncoding []string // empty means "all available"

	ResolveHosts []ResolveHost

	Headers []Header

	body          []byte
	bodySet       bool
	mimeFields    []MimeField
	mimeFieldsSet bool

	HappyEyeballsTimeout time.Duration

	OnComplete       OnCompleteFunc
	TransferProgress TransferProgressFunc
}

// NewRequest constructs a Request for method and url. An empty method
// defaults to GET, matching net/http's own convention. NewRequest
// returns ErrInvalidMethod if method is not a valid HTTP token, and
// otherwise never fails; a malformed URL is only detected later, at
// transport-configuration time, and surfaces as LiftStatus RequestEmpty.
func NewRequest(method, rawURL string) (*Request, error) {
	if method == "" {
		method = MethodGET
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
	return &Request{
		URL:          rawURL,
		Method:       method,
		Version:      UseBest,
		MaxRedirects: -1,
		TLS:          defaultTLSConfig(),
	}, nil
}

// ParsedURL parses the Request's URL field. It is a convenience for
// callers building diagnostics; the transport re-parses the URL
// itself during configuration.
func (r *Request) ParsedURL() (*url.URL, error) {
	return url.Parse(r.URL)
}

// Header appends a header (name, value) pair to the Request. An empty
// value encodes "suppress the transport's default header of this
// name" for the wire, per §4.1 and §8's header-suppression invariant.
func (r *Request) Header(name, value string) {
	r.Headers = append(r.Headers, Header{Name: name, Value: value})
}

// Data sets the Request's body and forces its method to POST, per
// §4.1. It fails with LogicConflict if any MIME field was previously
// added via MimeField. Once called, later MimeField calls fail even if
// body is empty — the two are exclusive by having been set, not by
// being non-empty.
func (r *Request) Data(body []byte) error {
	if r.mimeFieldsSet {
		return LogicConflict
	}
	r.body = body
	r.bodySet = true
	r.Method = MethodPOST
	return nil
}

// MimeField appends a multipart/form-data field to the Request. It
// fails with LogicConflict if a body was previously set via Data, even
// an empty one.
func (r *Request) MimeField(field MimeField) error {
	if r.bodySet {
		return LogicConflict
	}
	r.mimeFields = append(r.mimeFields, field)
	r.mimeFieldsSet = true
	return nil
}

// Body returns the request body previously set with Data, or nil if
// none was set.
func (r *Request) Body() []byte {
	return r.body
}

// MimeFields returns the multipart fields previously added with
// MimeField, or nil if none were added.
func (r *Request) MimeFields() []MimeField {
	return r.mimeFields
}

// FollowRedirectsWithMax enables redirect-following and sets the
// maximum number of redirects to follow. Per §4.1: max absent (pass
// -1) or negative means unbounded; 0 means none; a positive value is
// the exact bound.
func (r *Request) FollowRedirectsWithMax(max int) {
	r.FollowRedirects = true
	if max < 0 {
		max = -1
	}
	r.MaxRedirects = max
}

// DisableRedirects clears the follow-redirects flag, per §4.1's
// "if disabled, clears" rule.
func (r *Request) DisableRedirects() {
	r.FollowRedirects = false
	r.MaxRedirects = 0
}

// ResolveHost appends a DNS pre-population entry.
func (r *Request) ResolveHost(entry ResolveHost) {
	r.ResolveHosts = append(r.ResolveHosts, entry)
}

// ClearResolveHosts removes all previously added DNS pre-population
// entries.
func (r *Request) ClearResolveHosts() {
	r.ResolveHosts = nil
}

// OnCompleteHandler sets or clears (pass nil) the asynchronous
// completion callback.
func (r *Request) OnCompleteHandler(fn OnCompleteFunc) {
	r.OnComplete = fn
}

// TransferProgressHandler sets or clears (pass nil) the periodic
// transfer-progress callback.
func (r *Request) TransferProgressHandler(fn TransferProgressFunc) {
	r.TransferProgress = fn
}
