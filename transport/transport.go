// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transport implements the HTTP transport library interface
// required by spec §6, on top of the Go standard library's net/http
// and golang.org/x/net/http2, plus a Share's shared connection/DNS/
// cookie caches.
//
// Build applies a Request's configuration (the fields listed in §4.4)
// to a transport, and returns a Doer plus a ready-to-send
// *http.Request. The transport is a Share's own one when the Request
// needs no per-request transport settings, and a clone or a fresh
// private one otherwise. Both the synchronous
// (Perform) and asynchronous (EventLoop) executors call Build; neither
// duplicates its configuration logic.
package transport

import "net/http"

// Doer is the interface implemented by anything capable of sending an
// HTTP request and returning a response, in the same manner as the
// standard library's http.Client. It is grounded on gogama/httpx's
// HTTPDoer interface of the same shape.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
