// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"net/http"
	"net/textproto"
	"strings"

	"github.com/liftgo/lift/request"
)

// applyHeaders sets req's headers from the Request's header list,
// suppressing transport defaults where a header carries an empty
// value.
//
// A header with an empty value is entered into req.Header with a nil
// []string: no line is written for it, and its presence stops
// net/http from adding its default User-Agent. net/http's other
// automatic headers (Host, Content-Length, and the
// "Accept-Encoding: gzip" the transport adds when compression is
// enabled) are not suppressed this way.
func applyHeaders(req *http.Request, headers []request.Header) {
	for _, h := range headers {
		key := textproto.CanonicalMIMEHeaderKey(h.Name)
		if h.Value == "" {
			req.Header[key] = nil
			continue
		}
		req.Header.Add(key, h.Value)
	}
}

// applyAcceptEncoding sets the Accept-Encoding header from an
// explicit list, or leaves the transport's own automatic negotiation
// in place when the list is empty ("all available", per §3).
func applyAcceptEncoding(req *http.Request, t *http.Transport, encodings []string) {
	if len(encodings) == 0 {
		return
	}
	t.DisableCompression = true
	req.Header.Set("Accept-Encoding", strings.Join(encodings, ", "))
}
