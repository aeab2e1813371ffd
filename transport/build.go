// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/liftgo/lift/request"
	"github.com/liftgo/lift/share"
)

// ErrRequestEmpty is returned by Build when a Request has no URL, or a
// URL with no host, and maps onto status.RequestEmpty at the caller.
var ErrRequestEmpty = errors.New("transport: request has no URL")

// A Built is the result of Build: a Doer ready to execute exactly one
// HTTP request attempt, and the *http.Request to send through it.
type Built struct {
	Doer Doer
	Req  *http.Request

	// Redirects points at a counter buildCheckRedirect updates as the
	// Doer follows redirects. It is only meaningful after Doer.Do
	// returns.
	Redirects *int
}

// Build translates r into a Built, applying the fields of spec §4.4's
// configuration mapping in this order:
//
// url; method; happy-eyeballs timeout and pre-resolved hosts (both in
// the dial function); SSL verify peer/host/status, client certificate
// and type, client key and passphrase; proxy; HTTP version; redirect
// policy; Accept-Encoding; custom headers; body or MIME fields;
// upload-progress callback registration. The transport timeout is not
// applied here; callers carry it in ctx.
//
// sh may be nil, in which case Build creates a private, single-use
// transport instead of using one from a Share.
//
// Build only clones or replaces fields on a Share's *http.Transport
// when the Request actually asks for something the Share's persistent
// transport doesn't already provide (a proxy, a TLS override, extra
// resolve entries, a happy-eyeballs delay, a forced HTTP/1, or an
// explicit Accept-Encoding list). A plain request reuses the Share's
// transport untouched, so its pooled idle connections are actually
// reused across calls, per §8's connection-reuse property; only a
// Request that deviates from the pool's baseline configuration pays
// for a private, unpooled transport of its own.
func Build(ctx context.Context, r *request.Request, sh *share.Share) (*Built, error) {
	// url
	u, err := url.Parse(r.URL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrRequestEmpty, errOrEmptyURL(err))
	}

	var jar http.CookieJar
	if sh != nil {
		jar = sh.Jar()
	}

	needsDial := sh == nil || len(r.ResolveHosts) > 0 || r.HappyEyeballsTimeout > 0
	needsTLS := sh == nil || !r.TLS.IsDefault()
	needsVersion := r.Version == request.V1_0 || r.Version == request.V1_1
	needsAcceptEncoding := len(r.AcceptEncoding) > 0
	needsProxy := r.Proxy != nil
	private := sh == nil || needsDial || needsTLS || needsVersion || needsAcceptEncoding || needsProxy

	var base *http.Transport
	switch {
	case sh == nil:
		base = share.NewTransport()
	case private:
		base = sh.Transport().Clone()
	default:
		base = sh.Transport()
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: building request: %w", err)
	}

	// transport timeout is applied by the caller via ctx, since it
	// must race independently against the time's-up budget (§4.6);
	// Build itself does not read it.

	// happy-eyeballs timeout and pre-resolved hosts fold into the dial
	// function; only built when this Request needs one of its own.
	if needsDial {
		base.DialContext = buildDialContext(r, sh)
	}

	// SSL verify peer/host/status, client certificate and type,
	// client key and passphrase — applied to base before HTTP version
	// selection, since V2_0_TLS constructs its own *http2.Transport
	// from base's TLSClientConfig. Skipped when the Request's
	// TLS settings are all defaults, so a shared base's TLSClientConfig
	// stays nil and Go fills in the right ServerName per connection.
	if needsTLS {
		tlsCfg, err := buildTLSConfig(&r.TLS, u.Hostname())
		if err != nil {
			return nil, err
		}
		base.TLSClientConfig = tlsCfg
	}

	// proxy — set on base only; the *http2.Transport that V2_0_TLS and
	// V2_0_ONLY use does not route through it.
	if err := applyProxy(base, r.Proxy); err != nil {
		return nil, err
	}

	// HTTP version. share.NewTransport and Share.New both already set
	// ForceAttemptHTTP2, matching UseBest/V2_0/default, so those cases
	// need no mutation at all; only V1_0/V1_1 (forcing HTTP/1) and
	// V2_0_TLS/V2_0_ONLY (their own *http2.Transport) call applyVersion,
	// so a shared base is never written to outside the private cases
	// already accounted for above.
	var rt http.RoundTripper = base
	switch r.Version {
	case request.V1_0, request.V1_1, request.V2_0_TLS, request.V2_0_ONLY:
		rt, err = applyVersion(r.Version, base)
		if err != nil {
			return nil, err
		}
	}

	checkRedirect, redirects := buildCheckRedirect(r)
	client := &http.Client{
		Transport:     rt,
		CheckRedirect: checkRedirect,
	}
	if jar != nil {
		client.Jar = jar
	}

	// Accept-Encoding
	applyAcceptEncoding(req, base, r.AcceptEncoding)

	// custom headers
	applyHeaders(req, r.Headers)

	// body or MIME fields
	if err := applyBody(req, r); err != nil {
		return nil, err
	}
	if req.Body != nil {
		req.Body = wrapUploadProgress(req.Body, r.TransferProgress, req.ContentLength)
	}

	return &Built{Doer: client, Req: req, Redirects: redirects}, nil
}

func errOrEmptyURL(err error) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("no host in URL")
}
