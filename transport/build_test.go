// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftgo/lift/request"
	"github.com/liftgo/lift/share"
)

func TestBuildHeaderSuppression(t *testing.T) {
	var gotExpect []string
	var hadExpectKey bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotExpect, hadExpectKey = r.Header["Expect"]
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r, err := request.NewRequest("GET", srv.URL)
	require.NoError(t, err)
	r.Header("Expect", "")

	built, err := Build(context.Background(), r, nil)
	require.NoError(t, err)

	resp, err := built.Doer.Do(built.Req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.False(t, hadExpectKey)
	assert.Empty(t, gotExpect)
}

func TestBuildAcceptEncoding(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Accept-Encoding")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r, err := request.NewRequest("GET", srv.URL)
	require.NoError(t, err)
	r.AcceptEncoding = []string{"gzip", "identity"}

	built, err := Build(context.Background(), r, nil)
	require.NoError(t, err)
	resp, err := built.Doer.Do(built.Req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "gzip, identity", got)
}

func TestBuildRedirectPolicy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/start" {
			http.Redirect(w, r, "/end", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Run("disabled", func(t *testing.T) {
		r, err := request.NewRequest("GET", srv.URL+"/start")
		require.NoError(t, err)
		r.DisableRedirects()

		built, err := Build(context.Background(), r, nil)
		require.NoError(t, err)
		resp, err := built.Doer.Do(built.Req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusFound, resp.StatusCode)
	})

	t.Run("enabled", func(t *testing.T) {
		r, err := request.NewRequest("GET", srv.URL+"/start")
		require.NoError(t, err)
		r.FollowRedirectsWithMax(-1)

		built, err := Build(context.Background(), r, nil)
		require.NoError(t, err)
		resp, err := built.Doer.Do(built.Req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestBuildMimeFields(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "bar", r.FormValue("foo"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r, err := request.NewRequest("POST", srv.URL)
	require.NoError(t, err)
	require.NoError(t, r.MimeField(request.MimeField{Name: "foo", Value: "bar"}))

	built, err := Build(context.Background(), r, nil)
	require.NoError(t, err)
	resp, err := built.Doer.Do(built.Req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Contains(t, gotContentType, "multipart/form-data")
}

func TestBuildReusesShareConnections(t *testing.T) {
	var newConns int32
	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	srv.Config.ConnState = func(_ net.Conn, state http.ConnState) {
		if state == http.StateNew {
			atomic.AddInt32(&newConns, 1)
		}
	}
	srv.Start()
	defer srv.Close()

	sh := share.New()
	for i := 0; i < 5; i++ {
		r, err := request.NewRequest("GET", srv.URL)
		require.NoError(t, err)

		built, err := Build(context.Background(), r, sh)
		require.NoError(t, err)

		resp, err := built.Doer.Do(built.Req)
		require.NoError(t, err)
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&newConns))
}

func TestBuildInvalidURL(t *testing.T) {
	r, err := request.NewRequest("GET", "not-a-url")
	require.NoError(t, err)
	_, err = Build(context.Background(), r, nil)
	assert.Error(t, err)
}
