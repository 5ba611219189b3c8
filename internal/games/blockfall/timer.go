package blockfall

import (
	"errors"
	"fmt"
	"time"
)

// ErrWaitCancelled is the error a pending wait is rejected with.
// It is always wrapped together with one of the reasons below.
var ErrWaitCancelled = errors.New("wait cancelled")

// Cancellation reasons.
var (
	ErrReset      = errors.New("reset")
	ErrPaused     = errors.New("paused")
	ErrSuperseded = errors.New("superseded")
)

func cancelled(reason error) error {
	return fmt.Errorf("%w: %w", ErrWaitCancelled, reason)
}

// timerSlot is the single in-flight wait of a loop. The generation
// changes on every start and every cancel, so a firing that does not
// carry the current generation is stale and must be ignored.
type timerSlot struct {
	gen     uint64
	pending bool
	then    func()
}

// start arms the slot and returns the generation to schedule.
func (t *timerSlot) start(then func()) uint64 {
	t.gen++
	t.pending = true
	t.then = then
	return t.gen
}

// cancel disarms the slot. It reports whether a wait was pending.
func (t *timerSlot) cancel() bool {
	if !t.pending {
		return false
	}
	t.gen++
	t.pending = false
	t.then = nil
	return true
}

// fire consumes the pending wait when gen is current and returns its
// continuation; otherwise it returns nil.
func (t *timerSlot) fire(gen uint64) func() {
	if !t.pending || gen != t.gen {
		return nil
	}
	then := t.then
	t.pending = false
	t.then = nil
	return then
}

// wait schedules then to run after d on the loop's single timer slot.
func (l *Loop) wait(d time.Duration, then func()) {
	l.sched.After(d, l.timer.start(then))
}

// Fire delivers a scheduler firing. Stale generations are ignored.
func (l *Loop) Fire(gen uint64) {
	if then := l.timer.fire(gen); then != nil {
		then()
	}
}
