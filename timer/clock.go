// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package timer

import (
	"sync"
	"time"
)

// TickerGen creates a tick channel and a release func for it. Injected so
// tests drive ticks by hand instead of sleeping.
type TickerGen func(d time.Duration) (<-chan time.Time, func())

// RealTicker is the production TickerGen, backed by time.Ticker.
func RealTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Clock counts one turn down, once per second. onTick reports the new
// seconds remaining after each tick; onExpire fires exactly once when the
// count reaches zero, after which the clock has already stopped — so
// onExpire may Start the clock again for the next turn.
type Clock struct {
	gen      TickerGen
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewClock creates a clock. A nil gen uses RealTicker at one second.
func NewClock(gen TickerGen) *Clock {
	if gen == nil {
		gen = RealTicker
	}
	return &Clock{gen: gen, interval: time.Second}
}

// Start begins counting down from seconds, stopping any previous run
// first. onTick receives secondsRemaining-1 each tick and reports whether
// to keep counting.
func (c *Clock) Start(seconds int, onTick func(remaining int) bool, onExpire func()) {
	c.Stop()
	if seconds <= 0 {
		onExpire()
		return
	}

	c.mu.Lock()
	stop := make(chan struct{})
	done := make(chan struct{})
	c.stop, c.done = stop, done
	c.mu.Unlock()

	go c.run(seconds, onTick, onExpire, stop, done)
}

func (c *Clock) run(seconds int, onTick func(int) bool, onExpire func(), stop, done chan struct{}) {
	ticks, release := c.gen(c.interval)
	remaining := seconds
	halted := false
	for remaining > 0 && !halted {
		select {
		case <-stop:
			halted = true
		case <-ticks:
			remaining--
			if !onTick(remaining) && remaining > 0 {
				halted = true
			}
		}
	}
	release()

	// Detach before onExpire so the callback can restart the clock.
	c.mu.Lock()
	if c.stop == stop {
		c.stop, c.done = nil, nil
	}
	c.mu.Unlock()
	close(done)

	if !halted {
		onExpire()
	}
}

// Stop cancels the current run and waits for it to wind down. Safe to call
// when nothing is running.
func (c *Clock) Stop() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Running reports whether a countdown is in flight.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}
