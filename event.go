// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package lift

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in an EventLoop to observe or extend
// its request lifecycle.
type Event int

const (
	// BeforeConfigure identifies the event that occurs after an
	// Executor is created from a submitted Request but before the
	// transport is configured from it.
	//
	// When the loop fires BeforeConfigure, the Context's Response
	// field is nil.
	BeforeConfigure Event = iota
	// BeforeArm identifies the event that occurs after the transport
	// has been configured for a Request but before the Executor is
	// handed to the transport to run.
	BeforeArm
	// AfterComplete identifies the event that occurs once an Executor
	// reaches a terminal state, immediately before its on-complete
	// handler is invoked.
	//
	// When the loop fires AfterComplete, the Context's Response field
	// is always set, regardless of whether the transfer succeeded.
	AfterComplete

	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeConfigure",
	"BeforeArm",
	"AfterComplete",
}

// Events returns a slice containing all events which can occur during
// an Executor's lifecycle, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeConfigure,
		BeforeArm,
		AfterComplete,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
