// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "encoding/base64"

// A ProxyType selects the scheme used to reach the proxy itself.
type ProxyType int

const (
	// ProxyHTTP speaks plain HTTP to the proxy.
	ProxyHTTP ProxyType = iota
	// ProxyHTTPS speaks HTTPS to the proxy.
	ProxyHTTPS
)

// A ProxyAuth is a single acceptable proxy authentication scheme. Auth
// is specified as a set (any combination may be OR'd together into a
// Proxy's AuthTypes); when more than one is set the transport is free
// to pick any of them, and when none is set BASIC is assumed.
type ProxyAuth int

const (
	// ProxyAuthBasic is HTTP Basic authentication.
	ProxyAuthBasic ProxyAuth = 1 << iota
	// ProxyAuthAny allows any authentication scheme the transport
	// supports.
	ProxyAuthAny
	// ProxyAuthAnySafe allows any authentication scheme the transport
	// supports except ones that send the password in the clear (i.e.
	// not Basic).
	ProxyAuthAnySafe
)

// A Proxy describes an HTTP or HTTPS proxy to route a Request through.
type Proxy struct {
	Type      ProxyType
	Host      string
	Port      int
	Username  string
	Password  string
	AuthTypes ProxyAuth // zero value means "default to Basic"
}

// authMask ORs together the individual auth type bits set on the
// proxy, defaulting to ProxyAuthBasic when none are set, matching the
// §4.4 configuration mapping's "auth set OR'd together into a single
// auth mask, with BASIC as default when unspecified" rule.
func (p *Proxy) authMask() ProxyAuth {
	if p.AuthTypes == 0 {
		return ProxyAuthBasic
	}
	return p.AuthTypes
}

// AllowsBasic reports whether the proxy's auth mask permits Basic
// authentication. ANY permits it outright; ANY_SAFE explicitly
// excludes Basic (it sends the password in the clear), so a proxy
// configured with ANY_SAFE alone will not have Basic credentials sent
// on its behalf, even though net/http cannot perform the safer
// schemes ANY_SAFE would otherwise select.
func (p *Proxy) AllowsBasic() bool {
	mask := p.authMask()
	if mask&ProxyAuthAnySafe != 0 && mask&(ProxyAuthBasic|ProxyAuthAny) == 0 {
		return false
	}
	return true
}

// BasicAuthHeader builds the value of a Proxy-Authorization: Basic
// header from the proxy's credentials.
//
// The base64 encoding step is lifted from net/http/client.go's
// private basicAuth helper.
func (p *Proxy) BasicAuthHeader() string {
	auth := p.Username + ":" + p.Password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(auth))
}
