// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// An HTTPVersion selects which HTTP protocol version a Request should
// use.
type HTTPVersion int

const (
	// UseBest lets the transport negotiate the best version it can,
	// normally HTTP/2 over TLS via ALPN and HTTP/1.1 otherwise.
	UseBest HTTPVersion = iota
	// V1_0 disables HTTP/2 exactly as V1_1 does; requests are still
	// sent with an HTTP/1.1 request line.
	V1_0
	// V1_1 forces HTTP/1.1.
	V1_1
	// V2_0 attempts HTTP/2 but falls back to HTTP/1.1 if the peer
	// doesn't support it.
	V2_0
	// V2_0_TLS forces HTTP/2 over a TLS connection, never falling back.
	V2_0_TLS
	// V2_0_ONLY forces HTTP/2 with prior knowledge over a cleartext
	// connection (h2c). It never uses TLS, not even for an https URL.
	V2_0_ONLY
)

func (v HTTPVersion) String() string {
	switch v {
	case UseBest:
		return "USE_BEST"
	case V1_0:
		return "V1_0"
	case V1_1:
		return "V1_1"
	case V2_0:
		return "V2_0"
	case V2_0_TLS:
		return "V2_0_TLS"
	case V2_0_ONLY:
		return "V2_0_ONLY"
	default:
		return "UNKNOWN"
	}
}
