package blockfall

import "time"

// step is one stage of a run: an action followed by an optional wait.
type step struct {
	do   func()
	wait func() time.Duration
}

// run is a cancellable sequence of steps. finally executes exactly once,
// when the steps complete or when the run is interrupted. If gravity is
// set the gravity loop takes over once the steps complete.
type run struct {
	id      uint64
	name    string
	state   State
	steps   []step
	next    int
	finally func()
	gravity bool
	settled bool
}

func fixed(d time.Duration) func() time.Duration {
	return func() time.Duration { return d }
}

// start interrupts whatever is running and begins r.
func (l *Loop) start(r *run) {
	l.lock(ErrSuperseded)
	l.runs++
	r.id = l.runs
	l.run = r
	l.state = r.state
	l.log.Debug("run started", "run", r.name, "id", r.id)
	l.proceed(r)
}

// proceed executes r's steps until one has to wait, r is replaced, or the
// steps are exhausted.
func (l *Loop) proceed(r *run) {
	for r.next < len(r.steps) {
		s := r.steps[r.next]
		r.next++
		if s.do != nil {
			s.do()
		}
		if l.run != r {
			return
		}
		if s.wait != nil {
			l.wait(s.wait(), func() { l.proceed(r) })
			return
		}
	}

	l.settle(r)
	if l.run != r {
		return
	}
	if !r.gravity {
		l.run = nil
		return
	}
	l.state = StatePlaying
	l.inputs = true
	l.fall()
}

// settle runs r's finally once.
func (l *Loop) settle(r *run) {
	if r.settled {
		return
	}
	r.settled = true
	if r.finally != nil {
		r.finally()
	}
}

// lock rejects the pending wait, settles the current run and disables
// movement input. Calling it with nothing in flight only disables input.
func (l *Loop) lock(reason error) {
	r := l.run
	if l.timer.cancel() {
		l.cancels++
		name := "none"
		if r != nil {
			name = r.name
		}
		l.log.Debug("run interrupted", "run", name, "err", cancelled(reason))
	}
	l.run = nil
	if r != nil {
		l.settle(r)
	}
	l.inputs = false
}

// fall is the gravity loop: one step down, then wait for the fall delay.
func (l *Loop) fall() {
	if !l.moveDown() {
		return
	}
	l.wait(l.delay(), l.fall)
}
