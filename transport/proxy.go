// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/liftgo/lift/request"
)

// applyProxy configures t to route through p.
//
// Go's http.Transport only natively speaks HTTP Basic proxy
// authentication (via userinfo on the proxy URL, for plain HTTP
// targets, or via ProxyConnectHeader for CONNECT to HTTPS targets).
// Request.Proxy.AuthTypes may name ANY or ANY_SAFE, which curl can
// satisfy with Digest or Negotiate; net/http cannot, so Basic is the
// only scheme used here. Credentials are sent as Basic when the mask
// includes BASIC or ANY (see Proxy.AllowsBasic); a mask of ANY_SAFE
// alone sends no credentials at all.
func applyProxy(t *http.Transport, p *request.Proxy) error {
	if p == nil {
		return nil
	}

	scheme := "http"
	if p.Type == request.ProxyHTTPS {
		scheme = "https"
	}
	u := &url.URL{
		Scheme: scheme,
		Host:   fmt.Sprintf("%s:%d", p.Host, p.Port),
	}

	header := make(http.Header)
	if (p.Username != "" || p.Password != "") && p.AllowsBasic() {
		header.Set("Proxy-Authorization", p.BasicAuthHeader())
		u.User = url.UserPassword(p.Username, p.Password)
	}

	t.Proxy = http.ProxyURL(u)
	t.ProxyConnectHeader = header
	return nil
}
