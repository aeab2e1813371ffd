// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package response

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/liftgo/lift/status"
)

func TestHeaderGet(t *testing.T) {
	r := &Response{Headers: []Header{
		{Name: "Content-Type", Value: "text/plain"},
		{Name: "Set-Cookie", Value: "a=1"},
		{Name: "Set-Cookie", Value: "b=2"},
	}}
	assert.Equal(t, "text/plain", r.HeaderGet("Content-Type"))
	assert.Equal(t, "a=1", r.HeaderGet("Set-Cookie"))
	assert.Equal(t, "", r.HeaderGet("Missing"))
}

func TestSuccess(t *testing.T) {
	assert.True(t, (&Response{Status: status.Success}).Success())
	assert.False(t, (&Response{Status: status.TimesUp}).Success())
}
