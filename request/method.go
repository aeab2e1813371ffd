// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"strings"

	"golang.org/x/net/http/httpguts"
)

// Method is the set of HTTP methods a Request may use.
type Method = string

// The HTTP methods recognized by NewRequest, per spec §3.
const (
	MethodGET     = "GET"
	MethodHEAD    = "HEAD"
	MethodPOST    = "POST"
	MethodPUT     = "PUT"
	MethodDELETE  = "DELETE"
	MethodCONNECT = "CONNECT"
	MethodOPTIONS = "OPTIONS"
	MethodPATCH   = "PATCH"
	MethodTRACE   = "TRACE"
)

// validMethod reports whether every character of method is an HTTP
// token character; the empty string passes (NewRequest substitutes
// GET for it before calling this). It is adapted from gogama/httpx's request.validMethod,
// which itself is grounded on the RFC 7230 §3.2.6 token grammar via
// golang.org/x/net/http/httpguts.
func validMethod(method string) bool {
	return strings.IndexFunc(method, isNotToken) == -1
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}
