// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package lift

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/liftgo/lift/request"
)

type testHandler struct {
	seq  int
	evts *[]string
	ctxs *[]*Context
}

func (h *testHandler) Handle(evt Event, c *Context) {
	*h.evts = append(*h.evts, fmt.Sprintf("%d.%s", h.seq, evt))
	*h.ctxs = append(*h.ctxs, c)
}

func TestHandlerGroup(t *testing.T) {
	var evts []string
	var ctxs []*Context
	h1 := &testHandler{seq: 1, evts: &evts, ctxs: &ctxs}
	h2 := &testHandler{seq: 2, evts: &evts, ctxs: &ctxs}
	g := &HandlerGroup{}

	t.Run("PushBack", func(t *testing.T) {
		assert.Panics(t, func() { g.PushBack(BeforeConfigure, nil) })
		assert.Panics(t, func() { g.PushBack(Event(123), h1) })
		g.PushBack(BeforeConfigure, h1)
		g.PushBack(BeforeConfigure, h2)
		g.PushBack(AfterComplete, h1)
	})

	t.Run("run", func(t *testing.T) {
		r1, _ := request.NewRequest("GET", "http://example.com/1")
		r2, _ := request.NewRequest("GET", "http://example.com/2")
		c1 := &Context{Request: r1}
		c2 := &Context{Request: r2}

		g.run(BeforeArm, c1)
		assert.Empty(t, evts)

		g.run(BeforeConfigure, c1)
		assert.Equal(t, []string{"1.BeforeConfigure", "2.BeforeConfigure"}, evts)
		assert.Equal(t, []*Context{c1, c1}, ctxs)

		evts, ctxs = evts[:0], ctxs[:0]
		g.run(AfterComplete, c2)
		assert.Equal(t, []string{"1.AfterComplete"}, evts)
		assert.Equal(t, []*Context{c2}, ctxs)
	})
}

func TestHandlerGroupNilIsNoop(t *testing.T) {
	var g *HandlerGroup
	assert.NotPanics(t, func() { g.run(BeforeConfigure, &Context{}) })
}

func TestHandlerFunc(t *testing.T) {
	var gotEvt Event
	var gotCtx *Context
	h := HandlerFunc(func(evt Event, c *Context) {
		gotEvt = evt
		gotCtx = c
	})
	c := &Context{}
	h.Handle(BeforeArm, c)

	assert.Equal(t, BeforeArm, gotEvt)
	assert.Same(t, c, gotCtx)
}
