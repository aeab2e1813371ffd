// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package lift

import (
	"github.com/liftgo/lift/request"
	"github.com/liftgo/lift/response"
)

// A Context carries the state visible to a Handler at the point an
// Event fires. Response is nil until AfterComplete.
type Context struct {
	Request  *request.Request
	Response *response.Response
}

// A HandlerGroup is a group of event handler chains which can be
// installed in an EventLoop.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler chain
// for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("lift: nil handler")
	}
	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}
	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, c *Context) {
	if g == nil {
		return
	}
	i := int(evt)
	if i < len(g.handlers) {
		for _, h := range g.handlers[i] {
			h.Handle(evt, c)
		}
	}
}

// A Handler handles the occurrence of an event during an Executor's
// lifecycle. BeforeConfigure handlers run on the goroutine that called
// Submit, as do AfterComplete handlers for a Request whose transport
// configuration failed; all others run on the loop's I/O goroutine.
// Handlers must not block.
type Handler interface {
	Handle(Event, *Context)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers.
type HandlerFunc func(Event, *Context)

// Handle calls f(evt, c).
func (f HandlerFunc) Handle(evt Event, c *Context) {
	f(evt, c)
}
