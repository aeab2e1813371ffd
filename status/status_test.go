// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "SUCCESS", Success.String())
	assert.Equal(t, "TIMESUP", TimesUp.String())
	assert.Equal(t, "CONNECT_DNS_ERROR", ConnectDNSError.String())
	assert.Equal(t, "UNKNOWN", LiftStatus(999).String())
}

func TestTerminal(t *testing.T) {
	assert.False(t, Building.Terminal())
	assert.False(t, Executing.Terminal())
	assert.True(t, Success.Terminal())
	assert.True(t, TimesUp.Terminal())
	assert.True(t, Error.Terminal())
}
