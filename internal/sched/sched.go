// Package sched provides a single-threaded timer queue for the game loop.
//
// The loop schedules one-shot callbacks (update tick, score tick, speed
// ramp, invincibility expiry) and the platform drives the queue by calling
// Advance with the elapsed wall time. All callbacks run on the caller's
// goroutine, so there is exactly one mutator and no locking. Cancellation
// is explicit: pausing cancels a token, resuming issues a new one.
package sched

import "time"

// Callback runs when its timer comes due.
type Callback func()

// Token identifies a scheduled callback and allows cancelling it.
type Token struct {
	id        uint64
	due       time.Duration
	fn        Callback
	cancelled bool
}

// Cancel prevents the callback from firing. Safe to call more than once
// and safe to call after the timer has fired.
func (t *Token) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Queue is an ordered collection of pending one-shot timers.
// The zero value is not usable; create queues with New.
type Queue struct {
	now    time.Duration
	nextID uint64
	timers []*Token
}

// New creates an empty timer queue at time zero.
func New() *Queue {
	return &Queue{}
}

// Now returns the queue's current simulated time.
func (q *Queue) Now() time.Duration {
	return q.now
}

// After schedules fn to run once d from now. Non-positive durations fire
// on the next Advance. The returned token cancels the callback.
func (q *Queue) After(d time.Duration, fn Callback) *Token {
	if d < 0 {
		d = 0
	}
	q.nextID++
	t := &Token{
		id:  q.nextID,
		due: q.now + d,
		fn:  fn,
	}
	q.timers = append(q.timers, t)
	return t
}

// Pending returns the number of live timers in the queue.
func (q *Queue) Pending() int {
	n := 0
	for _, t := range q.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves the queue's clock forward by d, firing every due callback
// in order (earliest deadline first, insertion order on ties). Callbacks
// may schedule further timers; those fire within the same Advance if they
// come due before the target time. This is what lets a 30ms update tick
// re-arm itself repeatedly during a longer catch-up advance.
func (q *Queue) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := q.now + d

	for {
		next := q.takeDue(target)
		if next == nil {
			break
		}
		q.now = next.due
		next.fn()
	}

	q.now = target
}

// takeDue removes and returns the earliest live timer due at or before
// target, or nil if none is due. Cancelled timers are pruned as a side
// effect.
func (q *Queue) takeDue(target time.Duration) *Token {
	live := q.timers[:0]
	var best *Token
	for _, t := range q.timers {
		if t.cancelled {
			continue
		}
		live = append(live, t)
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	q.timers = live

	if best == nil {
		return nil
	}
	for i, t := range q.timers {
		if t == best {
			q.timers = append(q.timers[:i], q.timers[i+1:]...)
			break
		}
	}
	return best
}
