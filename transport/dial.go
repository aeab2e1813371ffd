// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"context"
	"net"
	"time"

	"github.com/liftgo/lift/request"
	"github.com/liftgo/lift/share"
)

// resolveOverride looks up addr ("host:port") against the Request's
// own resolve list first, then against the Share's, matching the
// precedence a per-request setting should have over a shared default.
func resolveOverride(r *request.Request, sh *share.Share, addr string) (string, bool) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", false
	}
	for _, e := range r.ResolveHosts {
		if e.Host == host && (e.Port == 0 || itoa(e.Port) == port) {
			ipPort := e.IP
			if e.IPPort != 0 {
				ipPort = net.JoinHostPort(e.IP, itoa(e.IPPort))
			} else if _, _, err := net.SplitHostPort(e.IP); err != nil {
				ipPort = net.JoinHostPort(e.IP, port)
			}
			return ipPort, true
		}
	}
	if sh != nil {
		if ipPort, ok := sh.Resolved(addr); ok {
			return ipPort, true
		}
	}
	return "", false
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// buildDialContext returns a DialContext function which consults
// resolveOverride before falling back to the normal dialer, and which
// applies the Request's happy-eyeballs (FallbackDelay) timeout.
func buildDialContext(r *request.Request, sh *share.Share) func(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{
		Timeout:       30 * time.Second,
		FallbackDelay: r.HappyEyeballsTimeout,
	}
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		if override, ok := resolveOverride(r, sh, addr); ok {
			addr = override
		}
		return dialer.DialContext(ctx, network, addr)
	}
}
