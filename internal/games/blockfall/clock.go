package blockfall

import (
	"slices"
	"time"
)

// Scheduler arranges for the loop's Fire(gen) to be called once d has
// elapsed. It never calls back synchronously from After.
type Scheduler interface {
	Now() time.Duration
	After(d time.Duration, gen uint64)
}

type deadline struct {
	at  time.Duration
	gen uint64
	seq uint64
}

// Clock is a virtual Scheduler advanced explicitly by the platform tick,
// so every wait is deterministic and testable without sleeping.
type Clock struct {
	now     time.Duration
	pending []deadline
	seq     uint64
}

// NewClock returns a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the virtual time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// After schedules gen to fire at Now()+d.
func (c *Clock) After(d time.Duration, gen uint64) {
	if d < 0 {
		d = 0
	}
	c.seq++
	c.pending = append(c.pending, deadline{at: c.now + d, gen: gen, seq: c.seq})
}

// Pending returns the number of scheduled firings, stale ones included.
func (c *Clock) Pending() int {
	return len(c.pending)
}

// Advance moves time forward by dt, calling fire for every deadline that
// comes due, in deadline order. While fire runs, Now() reports the
// deadline being fired, so waits scheduled from inside fire are measured
// from the moment they logically started.
func (c *Clock) Advance(dt time.Duration, fire func(gen uint64)) {
	target := c.now + dt
	for {
		i := c.earliest()
		if i < 0 || c.pending[i].at > target {
			break
		}
		d := c.pending[i]
		c.pending = slices.Delete(c.pending, i, i+1)
		c.now = d.at
		fire(d.gen)
	}
	c.now = target
}

func (c *Clock) earliest() int {
	best := -1
	for i, d := range c.pending {
		if best < 0 || d.at < c.pending[best].at || (d.at == c.pending[best].at && d.seq < c.pending[best].seq) {
			best = i
		}
	}
	return best
}
