package core

import "time"

// Ticker converts wall-clock time into a count of fixed simulation steps.
//
// The platform wakes up roughly once per interval, but rendering can make a
// wake-up late. Ticker accumulates the real elapsed time and reports how
// many whole steps are due, so physics always advances at the same rate and
// a slow frame is followed by catch-up steps rather than a slower game.
type Ticker struct {
	interval   time.Duration
	maxCatchUp int
	last       time.Time
	carry      time.Duration
	dropped    int
}

// NewTicker creates a ticker producing rate steps per second.
// Catch-up is limited to one second worth of steps so that a suspended
// process does not fast-forward through a whole round on resume.
func NewTicker(rate int) *Ticker {
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return &Ticker{
		interval:   time.Second / time.Duration(rate),
		maxCatchUp: rate,
	}
}

// Interval returns the fixed step duration.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Start sets the reference time. Steps are counted from here.
func (t *Ticker) Start(now time.Time) {
	t.last = now
	t.carry = 0
}

// Due returns how many steps have elapsed since the previous call.
// The first call after construction starts the clock and returns 1.
func (t *Ticker) Due(now time.Time) int {
	if t.last.IsZero() {
		t.Start(now)
		return 1
	}

	elapsed := now.Sub(t.last)
	if elapsed < 0 {
		elapsed = 0
	}
	t.last = now

	t.carry += elapsed
	steps := int(t.carry / t.interval)
	t.carry -= time.Duration(steps) * t.interval

	if steps > t.maxCatchUp {
		t.dropped += steps - t.maxCatchUp
		steps = t.maxCatchUp
		t.carry = 0
	}
	return steps
}

// Dropped returns the total number of steps discarded by the catch-up limit.
func (t *Ticker) Dropped() int {
	return t.dropped
}
