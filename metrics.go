// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package lift

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/liftgo/lift/response"
	"github.com/liftgo/lift/status"
)

// A Stats is a point-in-time snapshot of an EventLoop's completed-
// request statistics, taken with EventLoop.Stats.
type Stats struct {
	Total, Success, Errors, TimesUps int64
	P50, P95, P99, Max               time.Duration
}

// metrics accumulates per-completion latency and outcome counts for
// an EventLoop, independent of and in addition to the plain
// active-request counter the specification requires.
type metrics struct {
	mu        sync.Mutex
	histogram *hdrhistogram.Histogram

	total   atomic.Int64
	success atomic.Int64
	errors  atomic.Int64
	timesUp atomic.Int64
}

func newMetrics() *metrics {
	return &metrics{histogram: hdrhistogram.New(1, 60_000_000, 3)}
}

func (m *metrics) record(resp *response.Response) {
	m.total.Add(1)
	switch resp.Status {
	case status.Success:
		m.success.Add(1)
	case status.TimesUp:
		m.timesUp.Add(1)
		m.errors.Add(1)
	default:
		m.errors.Add(1)
	}

	us := resp.TotalTime.Microseconds()
	if us < 1 {
		us = 1
	}
	if us > 60_000_000 {
		us = 60_000_000
	}
	m.mu.Lock()
	_ = m.histogram.RecordValue(us)
	m.mu.Unlock()
}

func (m *metrics) snapshot() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{
		Total:    m.total.Load(),
		Success:  m.success.Load(),
		Errors:   m.errors.Load(),
		TimesUps: m.timesUp.Load(),
		P50:      time.Duration(m.histogram.ValueAtQuantile(50)) * time.Microsecond,
		P95:      time.Duration(m.histogram.ValueAtQuantile(95)) * time.Microsecond,
		P99:      time.Duration(m.histogram.ValueAtQuantile(99)) * time.Microsecond,
		Max:      time.Duration(m.histogram.Max()) * time.Microsecond,
	}
}
