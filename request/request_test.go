// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r, err := NewRequest("", "http://example.test/")
		require.NoError(t, err)
		assert.Equal(t, MethodGET, r.Method)
		assert.Equal(t, UseBest, r.Version)
		assert.Equal(t, -1, r.MaxRedirects)
		assert.True(t, r.TLS.verifyPeer())
		assert.True(t, r.TLS.verifyHost())
	})
	t.Run("invalid method", func(t *testing.T) {
		_, err := NewRequest("G E T", "http://example.test/")
		assert.ErrorIs(t, err, ErrInvalidMethod)
	})
}

func TestHeaderAppend(t *testing.T) {
	r, err := NewRequest("GET", "http://example.test/")
	require.NoError(t, err)
	r.Header("Accept", "application/json")
	r.Header("Expect", "")
	require.Len(t, r.Headers, 2)
	assert.Equal(t, Header{Name: "Expect", Value: ""}, r.Headers[1])
}

func TestDataAndMimeFieldConflict(t *testing.T) {
	r, err := NewRequest("GET", "http://example.test/")
	require.NoError(t, err)

	require.NoError(t, r.Data([]byte("x")))
	assert.Equal(t, MethodPOST, r.Method)

	err = r.MimeField(MimeField{Name: "k", Value: "v"})
	assert.ErrorIs(t, err, LogicConflict)
}

func TestEmptyDataStillConflictsWithMimeField(t *testing.T) {
	r, err := NewRequest("GET", "http://example.test/")
	require.NoError(t, err)

	require.NoError(t, r.Data(nil))

	err = r.MimeField(MimeField{Name: "k", Value: "v"})
	assert.ErrorIs(t, err, LogicConflict)
}

func TestMimeFieldAndDataConflict(t *testing.T) {
	r, err := NewRequest("GET", "http://example.test/")
	require.NoError(t, err)

	require.NoError(t, r.MimeField(MimeField{Name: "k", Value: "v"}))

	err = r.Data([]byte("x"))
	assert.ErrorIs(t, err, LogicConflict)
}

func TestFollowRedirects(t *testing.T) {
	r, err := NewRequest("GET", "http://example.test/")
	require.NoError(t, err)

	r.FollowRedirectsWithMax(-1)
	assert.True(t, r.FollowRedirects)
	assert.Equal(t, -1, r.MaxRedirects)

	r.FollowRedirectsWithMax(0)
	assert.Equal(t, 0, r.MaxRedirects)

	r.FollowRedirectsWithMax(5)
	assert.Equal(t, 5, r.MaxRedirects)

	r.DisableRedirects()
	assert.False(t, r.FollowRedirects)
}

func TestResolveHosts(t *testing.T) {
	r, err := NewRequest("GET", "http://example.test/")
	require.NoError(t, err)

	r.ResolveHost(ResolveHost{Host: "example.test", Port: 80, IP: "127.0.0.1"})
	require.Len(t, r.ResolveHosts, 1)

	r.ClearResolveHosts()
	assert.Empty(t, r.ResolveHosts)
}

func TestMimeFieldIsFile(t *testing.T) {
	assert.True(t, MimeField{FilePath: "/tmp/x"}.isFile())
	assert.False(t, MimeField{Value: "x"}.isFile())
}
