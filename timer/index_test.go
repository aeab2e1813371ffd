// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexEmptyPeek(t *testing.T) {
	idx := NewIndex()
	_, ok := idx.Peek()
	assert.False(t, ok)
	assert.Equal(t, 0, idx.Len())
}

func TestIndexOrdersByDeadline(t *testing.T) {
	idx := NewIndex()
	base := time.Now()
	e3 := idx.Add(base.Add(3*time.Second), "third")
	e1 := idx.Add(base.Add(1*time.Second), "first")
	e2 := idx.Add(base.Add(2*time.Second), "second")
	require.NotNil(t, e1)
	require.NotNil(t, e2)
	require.NotNil(t, e3)

	assert.Equal(t, 3, idx.Len())
	top, ok := idx.Peek()
	require.True(t, ok)
	assert.Equal(t, "first", top.Value)
}

func TestIndexDrainDueOrder(t *testing.T) {
	idx := NewIndex()
	base := time.Now()
	idx.Add(base.Add(30*time.Millisecond), "c")
	idx.Add(base.Add(10*time.Millisecond), "a")
	idx.Add(base.Add(20*time.Millisecond), "b")

	due := idx.DrainDue(base.Add(25 * time.Millisecond))
	require.Len(t, due, 2)
	assert.Equal(t, "a", due[0].Value)
	assert.Equal(t, "b", due[1].Value)
	assert.Equal(t, 1, idx.Len())

	rest := idx.DrainDue(base.Add(100 * time.Millisecond))
	require.Len(t, rest, 1)
	assert.Equal(t, "c", rest[0].Value)
	assert.Equal(t, 0, idx.Len())
}

func TestIndexDuplicateDeadlines(t *testing.T) {
	idx := NewIndex()
	now := time.Now()
	idx.Add(now, "x")
	idx.Add(now, "y")
	assert.Equal(t, 2, idx.Len())
	due := idx.DrainDue(now)
	assert.Len(t, due, 2)
}

func TestIndexRemove(t *testing.T) {
	idx := NewIndex()
	base := time.Now()
	e1 := idx.Add(base.Add(1*time.Second), "keep-me-off-top")
	e2 := idx.Add(base.Add(2*time.Second), "second")
	_ = e2

	assert.True(t, idx.Remove(e1))
	assert.False(t, idx.Remove(e1), "removing twice should report not-found")
	assert.Equal(t, 1, idx.Len())

	top, ok := idx.Peek()
	require.True(t, ok)
	assert.Equal(t, "second", top.Value)
}

func TestIndexRemoveAfterFiring(t *testing.T) {
	idx := NewIndex()
	e := idx.Add(time.Now(), "fired")
	due := idx.DrainDue(time.Now())
	require.Len(t, due, 1)
	assert.False(t, idx.Remove(e))
}
