// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package status defines LiftStatus, the diagnostic outcome enum
// attached to every Response, and the classifier that maps low-level
// transport errors onto it.
package status

// A LiftStatus is the diagnostic outcome of a single Request
// execution. Every delivered Response carries exactly one LiftStatus,
// and a consumer can rely on it being one of the terminal values
// (everything except Building and Executing, which a consumer never
// observes).
type LiftStatus int

const (
	// Building indicates the request is still being translated into
	// transport configuration. Transitional; never observed by a
	// consumer.
	Building LiftStatus = iota
	// Executing indicates the request has been armed on the transport
	// and is in flight. Transitional; never observed by a consumer.
	Executing
	// Success indicates the transfer completed and produced a valid
	// HTTP response, regardless of status code.
	Success
	// ConnectError indicates failure before any HTTP bytes were
	// exchanged, for a reason other than DNS or TLS.
	ConnectError
	// ConnectDNSError indicates failure to resolve the request's host.
	ConnectDNSError
	// ConnectSSLError indicates failure to establish or verify a TLS
	// session with the remote host.
	ConnectSSLError
	// DownloadError indicates failure while reading the response body,
	// after headers were already received.
	DownloadError
	// Timeout indicates the transport-level per-attempt timeout
	// elapsed.
	Timeout
	// TimesUp indicates the request's wall-clock time's-up budget
	// elapsed before the transfer completed.
	TimesUp
	// RequestEmpty indicates the request had no URL, or was otherwise
	// not startable.
	RequestEmpty
	// Error is a residual failure kind not otherwise categorized.
	Error
	// ErrorFailedToStart indicates the request could not even be
	// registered with the transport (for example the transport
	// rejected it with a non-retryable submission error).
	ErrorFailedToStart
)

var names = [...]string{
	Building:           "BUILDING",
	Executing:          "EXECUTING",
	Success:            "SUCCESS",
	ConnectError:       "CONNECT_ERROR",
	ConnectDNSError:    "CONNECT_DNS_ERROR",
	ConnectSSLError:    "CONNECT_SSL_ERROR",
	DownloadError:      "DOWNLOAD_ERROR",
	Timeout:            "TIMEOUT",
	TimesUp:            "TIMESUP",
	RequestEmpty:       "REQUEST_EMPTY",
	Error:              "ERROR",
	ErrorFailedToStart: "ERROR_FAILED_TO_START",
}

// String returns the diagnostic status's canonical name, e.g. "SUCCESS".
func (s LiftStatus) String() string {
	if int(s) < 0 || int(s) >= len(names) {
		return "UNKNOWN"
	}
	return names[s]
}

// Terminal reports whether s is a value a consumer could actually
// observe on a delivered Response, i.e. everything except the two
// transitional values Building and Executing.
func (s LiftStatus) Terminal() bool {
	return s != Building && s != Executing
}
