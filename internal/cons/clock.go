package cons

import "time"

// FramePeriod is the nominal duration of one display frame.
const FramePeriod = time.Second / TickPerSec

// FrameClock measures elapsed time and paces frames.
type FrameClock interface {
	// Elapsed returns the monotonic time since the clock started.
	Elapsed() time.Duration
	// WaitForNextFrame blocks until the next frame boundary.
	WaitForNextFrame()
}

// Timebase is a FrameClock that can also block for an arbitrary duration.
// Backends and emulated hardware take a Timebase so tests can run on a
// ManualClock.
type Timebase interface {
	FrameClock
	Sleep(d time.Duration)
}

// SystemClock is a Timebase backed by the monotonic wall clock.
type SystemClock struct {
	start  time.Time
	period time.Duration
}

// NewSystemClock returns a clock that starts now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now(), period: FramePeriod}
}

// Elapsed returns the time since NewSystemClock.
func (c *SystemClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// Sleep blocks for d.
func (c *SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// WaitForNextFrame sleeps until the next multiple of the frame period.
func (c *SystemClock) WaitForNextFrame() {
	now := c.Elapsed()
	next := (now/c.period + 1) * c.period
	time.Sleep(next - now)
}

// ManualClock is a deterministic Timebase. Time only moves when a caller
// sleeps, waits for a frame or calls Advance.
type ManualClock struct {
	now    time.Duration
	period time.Duration
}

// NewManualClock returns a clock at zero with the standard frame period.
func NewManualClock() *ManualClock {
	return &ManualClock{period: FramePeriod}
}

// Elapsed returns the simulated time.
func (c *ManualClock) Elapsed() time.Duration {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Sleep advances the clock by d.
func (c *ManualClock) Sleep(d time.Duration) {
	c.Advance(d)
}

// WaitForNextFrame advances to the next multiple of the frame period.
func (c *ManualClock) WaitForNextFrame() {
	c.now = (c.now/c.period + 1) * c.period
}

// IntervalCounter counts whole periods since it was started. It models a
// periodic interrupt handler that increments a counter.
type IntervalCounter struct {
	tb     Timebase
	period time.Duration
	origin time.Duration
}

// NewIntervalCounter starts a counter at zero.
func NewIntervalCounter(tb Timebase, period time.Duration) *IntervalCounter {
	return &IntervalCounter{tb: tb, period: period, origin: tb.Elapsed()}
}

// Count returns the number of periods elapsed since the counter started.
func (c *IntervalCounter) Count() int64 {
	return int64((c.tb.Elapsed() - c.origin) / c.period)
}

// Period returns the counter interval.
func (c *IntervalCounter) Period() time.Duration {
	return c.period
}
