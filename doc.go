// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package lift provides an HTTP client with both a blocking synchronous
mode and a concurrent, callback-driven asynchronous mode built around a
single-threaded event loop.

For a one-off request, use Perform:

	r, err := request.NewRequest("GET", "https://www.example.com")
	...
	resp := lift.Perform(r, nil)
	if resp.Success() {
		...
	}

For many concurrent requests sharing connection and DNS caches, use a
Share and an EventLoop:

	sh := share.New()
	loop := lift.NewEventLoop(lift.Options{Share: sh})
	defer loop.Stop()

	r, _ := request.NewRequest("GET", "https://www.example.com")
	r.OnCompleteHandler(func(r *request.Request, resp *response.Response) {
		...
	})
	loop.Submit(r)

Every Request carries two independent, optional time budgets that may
both be set at once: a per-attempt transport timeout, and a wall-clock
time's-up budget that acts as this package's only cancellation
primitive. A request that exceeds its time's-up budget always completes
with status.TimesUp, whether it was submitted to an EventLoop or run
synchronously through Perform.

Install event handlers to observe or extend the request lifecycle:

	handlers := &lift.HandlerGroup{}
	handlers.PushBack(lift.AfterComplete, lift.HandlerFunc(
		func(_ lift.Event, c *lift.Context) {
			log.Printf("%s -> %s", c.Request.URL, c.Response.Status)
		},
	))
	loop := lift.NewEventLoop(lift.Options{Handlers: handlers})
*/
package lift
