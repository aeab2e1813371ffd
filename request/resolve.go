// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A ResolveHost is a single DNS pre-population entry: connections to
// Host:Port are answered with IP (optionally IP:IPPort if the remote
// port should also be overridden) without a DNS lookup.
type ResolveHost struct {
	Host   string
	Port   int
	IP     string
	IPPort int // 0 means "same as Port"
}
