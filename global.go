// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package lift

import "sync/atomic"

var globalScopeCount int32

// A GlobalScopeInitializer scopes acquisition of process-wide
// resources the transport needs before any request is sent.
//
// net/http and crypto/tls need no explicit process-wide init call the
// way curl_global_init does, so GlobalScopeInitializer does no real
// work; it exists so the caller-facing contract from the underlying
// transport library still holds when this package is swapped in for
// it. Its lifetime should still enclose all use of the library, and
// nesting Init/Close pairs is supported for that reason.
type GlobalScopeInitializer struct {
	closed int32
}

// Init acquires the global scope, incrementing the process-wide
// reference count.
func Init() *GlobalScopeInitializer {
	atomic.AddInt32(&globalScopeCount, 1)
	return &GlobalScopeInitializer{}
}

// Close releases the global scope acquired by Init. It is safe to call
// more than once; only the first call has any effect.
func (g *GlobalScopeInitializer) Close() {
	if atomic.CompareAndSwapInt32(&g.closed, 0, 1) {
		atomic.AddInt32(&globalScopeCount, -1)
	}
}

// activeGlobalScopes reports the number of GlobalScopeInitializers
// currently open. It exists for tests.
func activeGlobalScopes() int32 {
	return atomic.LoadInt32(&globalScopeCount)
}
