// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"

	"golang.org/x/net/http2"

	"github.com/liftgo/lift/request"
)

// applyVersion configures t (and, for the two HTTP/2-only variants,
// returns a replacement Doer) to honor the Request's HTTPVersion.
//
// V2_0_TLS and V2_0_ONLY bypass http.Transport's own negotiation
// entirely and hand back an *http2.Transport directly, since
// http.Transport has no way to force HTTP/2 without ALPN negotiation
// (V2_0_TLS) or over cleartext (V2_0_ONLY, "h2c").
//
// The *http2.Transport returned for V2_0_TLS takes only t's
// TLSClientConfig; t's proxy and dial function are not used. The one
// returned for V2_0_ONLY dials a plain TCP connection for every URL,
// https included, and uses none of t's settings.
func applyVersion(v request.HTTPVersion, t *http.Transport) (http.RoundTripper, error) {
	switch v {
	case request.UseBest:
		t.ForceAttemptHTTP2 = true
		return t, nil
	case request.V1_0, request.V1_1:
		t.ForceAttemptHTTP2 = false
		// A non-nil empty map disables HTTP/2 ALPN negotiation
		// entirely, per net/http.Transport's documented convention.
		t.TLSNextProto = map[string]func(string, *tls.Conn) http.RoundTripper{}
		return t, nil
	case request.V2_0:
		t.ForceAttemptHTTP2 = true
		return t, nil
	case request.V2_0_TLS:
		h2t := &http2.Transport{
			TLSClientConfig: t.TLSClientConfig,
		}
		return h2t, nil
	case request.V2_0_ONLY:
		h2t := &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, cfg *tls.Config) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, network, addr)
			},
		}
		return h2t, nil
	default:
		t.ForceAttemptHTTP2 = true
		return t, nil
	}
}
