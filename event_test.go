// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package lift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvents(t *testing.T) {
	assert.Len(t, eventNames, numEvents)
	events := Events()
	assert.Len(t, events, numEvents)
	assert.Equal(t, BeforeConfigure, events[BeforeConfigure])
	assert.Equal(t, BeforeArm, events[BeforeArm])
	assert.Equal(t, AfterComplete, events[AfterComplete])
}

func TestEventName(t *testing.T) {
	assert.Equal(t, "BeforeConfigure", BeforeConfigure.Name())
	assert.Equal(t, "BeforeArm", BeforeArm.Name())
	assert.Equal(t, "AfterComplete", AfterComplete.Name())
	assert.Equal(t, "AfterComplete", AfterComplete.String())
}
