// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A CertType is the encoding of a client certificate or key file on
// disk.
type CertType int

const (
	// CertPEM is PEM encoding.
	CertPEM CertType = iota
	// CertDER is DER encoding.
	CertDER
)

// TLSConfig collects the TLS-related knobs of a Request: peer/host/
// status verification toggles and an optional client certificate and
// key pair for mutual TLS.
type TLSConfig struct {
	// VerifyPeer controls whether the remote certificate chain is
	// verified. Defaults to true (the zero value of the enclosing
	// Request has VerifyPeer unset, which NewRequest maps to true).
	VerifyPeer *bool
	// VerifyHost controls whether the certificate's hostname is
	// checked against the request URL's host. Defaults to true.
	VerifyHost *bool
	// VerifyStatus controls whether OCSP stapling status is checked,
	// when supported by the transport.
	VerifyStatus bool

	CertPath       string
	CertType       CertType
	KeyPath        string
	KeyPassphrase  string
}

func defaultTLSConfig() TLSConfig {
	t := true
	return TLSConfig{VerifyPeer: &t, VerifyHost: &t}
}

func (t *TLSConfig) verifyPeer() bool {
	return t.VerifyPeer == nil || *t.VerifyPeer
}

func (t *TLSConfig) verifyHost() bool {
	return t.VerifyHost == nil || *t.VerifyHost
}

// IsDefault reports whether t carries no customization beyond the
// zero-value defaults (verify everything, no client certificate).
// transport.Build uses this to decide whether a request can run on a
// Share's persistent, pooled Transport as-is, or needs a private
// Transport carrying its own TLS configuration.
func (t *TLSConfig) IsDefault() bool {
	return t.verifyPeer() && t.verifyHost() && !t.VerifyStatus && t.CertPath == ""
}
