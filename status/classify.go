// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package status

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"syscall"
)

// Classify maps a low-level error from a transport call onto a
// LiftStatus. headersReceived should be true if HTTP response headers
// had already been read before err occurred (distinguishing a
// mid-transfer DownloadError from a pre-transfer ConnectError).
//
// Classify returns Success when err is nil and otherwise one of the
// failure statuses; it never returns Building, Executing, or TimesUp.
// TimesUp is produced directly by the event loop's timer path and by
// Perform.
func Classify(err error, headersReceived bool) LiftStatus {
	if err == nil {
		return Success
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ConnectDNSError
	}

	var certErr *tls.CertificateVerificationError
	var unknownAuthErr x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	var invalidCertErr x509.CertificateInvalidError
	if errors.As(err, &certErr) || errors.As(err, &unknownAuthErr) ||
		errors.As(err, &hostnameErr) || errors.As(err, &invalidCertErr) {
		return ConnectSSLError
	}
	var tlsRecordErr tls.RecordHeaderError
	if errors.As(err, &tlsRecordErr) {
		return ConnectSSLError
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.ETIMEDOUT:
			if headersReceived {
				return DownloadError
			}
			return ConnectError
		}
	}

	if headersReceived {
		return DownloadError
	}
	return ConnectError
}

type hasTimeout interface {
	Timeout() bool
}
