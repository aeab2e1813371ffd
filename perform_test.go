// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package lift

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftgo/lift/request"
	"github.com/liftgo/lift/share"
	"github.com/liftgo/lift/status"
)

func TestPerformSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Reply", "hi")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("body"))
	}))
	defer srv.Close()

	r, err := request.NewRequest("GET", srv.URL)
	require.NoError(t, err)

	resp := Perform(r, nil)
	require.True(t, resp.Success())
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "body", string(resp.Body))
	assert.Equal(t, "hi", resp.HeaderGet("X-Reply"))
	assert.Greater(t, resp.TotalTime, time.Duration(0))
}

func TestPerformConnectError(t *testing.T) {
	r, err := request.NewRequest("GET", "http://127.0.0.1:1")
	require.NoError(t, err)

	resp := Perform(r, nil)
	assert.False(t, resp.Success())
	assert.Equal(t, status.ConnectError, resp.Status)
}

func TestPerformTimesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r, err := request.NewRequest("GET", srv.URL)
	require.NoError(t, err)
	r.TimesUp = 20 * time.Millisecond

	resp := Perform(r, nil)
	assert.Equal(t, status.TimesUp, resp.Status)
}

func TestPerformTransportTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r, err := request.NewRequest("GET", srv.URL)
	require.NoError(t, err)
	r.Timeout = 20 * time.Millisecond

	resp := Perform(r, nil)
	assert.Equal(t, status.Timeout, resp.Status)
}

func TestPerformWithShare(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "abc"})
		cookie, _ := r.Cookie("sid")
		if cookie != nil {
			w.Header().Set("X-Saw-Cookie", "yes")
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sh := share.New()

	r1, err := request.NewRequest("GET", srv.URL)
	require.NoError(t, err)
	resp1 := Perform(r1, sh)
	require.True(t, resp1.Success())
	assert.Empty(t, resp1.HeaderGet("X-Saw-Cookie"))

	r2, err := request.NewRequest("GET", srv.URL)
	require.NoError(t, err)
	resp2 := Perform(r2, sh)
	require.True(t, resp2.Success())
	assert.Equal(t, "yes", resp2.HeaderGet("X-Saw-Cookie"))
}

func TestPerformInvalidURL(t *testing.T) {
	r, err := request.NewRequest("GET", "not-a-url")
	require.NoError(t, err)

	resp := Perform(r, nil)
	assert.Equal(t, status.RequestEmpty, resp.Status)
}
