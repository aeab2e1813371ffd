// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package share contains Share, the opaque handle representing
// connection, DNS, and cookie caches shared across multiple Requests.
package share

import (
	"context"
	"net"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"
)

// dialer is the plain dialer backing every Transport this package
// builds. Per-request happy-eyeballs overrides get their own dialer in
// transport.Build; a Share's own persistent Transport never varies its
// dial timeout per request.
var dialer = &net.Dialer{Timeout: 30 * time.Second}

// A Share is an opaque, thread-safe handle to a compartment of caches
// (connections, DNS answers, cookies) that may be reused across many
// Request executions.
//
// A Share must outlive every Request execution that references it. Its
// zero value is not usable; construct one with New.
type Share struct {
	transport *http.Transport
	jar       http.CookieJar

	resolveMu sync.RWMutex
	resolve   map[string]string // "host:port" -> "ip[:port]"
}

// New constructs a Share with its own connection pool and cookie jar.
// The cookie jar uses golang.org/x/net/publicsuffix so that cookies
// are scoped to registrable domains rather than full hostnames.
func New() *Share {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		// cookiejar.New only fails if the PublicSuffixList argument's
		// usage is invalid, which never happens with a valid List.
		panic(err)
	}
	s := &Share{
		transport: NewTransport(),
		jar:       jar,
		resolve:   make(map[string]string),
	}
	// The Share's own DialContext always consults its pre-resolve map,
	// so a private per-request DialContext override is only needed
	// when a Request adds its own ResolveHosts or happy-eyeballs
	// delay; ordinary requests share this one, and its connections,
	// unmodified.
	s.transport.DialContext = s.dialContext
	return s
}

// NewTransport returns an *http.Transport carrying this package's
// pooling defaults, with no DialContext or TLSClientConfig override.
// transport.Build calls this itself when constructing a private,
// single-use transport for a Request with no Share.
func NewTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
}

func (s *Share) dialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	if ipPort, ok := s.Resolved(addr); ok {
		addr = ipPort
	}
	return dialer.DialContext(ctx, network, addr)
}

// Transport returns the shared *http.Transport backing this Share's
// connection pool. transport.Build uses it as-is for a Request with no
// per-request transport settings, and clones it for one that has them
// (TLS, proxy, and so on), so such settings never leak between
// requests sharing the same Share.
func (s *Share) Transport() *http.Transport {
	return s.transport
}

// Jar returns the shared cookie jar.
func (s *Share) Jar() http.CookieJar {
	return s.jar
}

// PreResolve registers a DNS pre-population entry visible to every
// subsequent Request that uses this Share, in addition to any entries
// set directly on the Request itself.
func (s *Share) PreResolve(hostPort, ipPort string) {
	s.resolveMu.Lock()
	defer s.resolveMu.Unlock()
	s.resolve[hostPort] = ipPort
}

// Resolved looks up a pre-population entry previously registered with
// PreResolve. A dial made for a Request consults the Request's own
// resolve entries first, then this, and then normal DNS resolution.
func (s *Share) Resolved(hostPort string) (string, bool) {
	s.resolveMu.RLock()
	defer s.resolveMu.RUnlock()
	ipPort, ok := s.resolve[hostPort]
	return ipPort, ok
}

// CloseIdleConnections releases any idle pooled connections, but
// leaves in-flight connections untouched.
func (s *Share) CloseIdleConnections() {
	s.transport.CloseIdleConnections()
}
