// Package step holds the small set of helpers shared by every snapshot
// generator in stepviz.
//
// A generator is an iter.Seq[S]: ranging over it runs the algorithm and
// suspends it at every yield, so a consumer pulls exactly one snapshot per
// loop iteration. Breaking out of the loop abandons the run; generators hold
// no external resources, so nothing needs cleaning up.
//
// Cursor adapts a generator to the explicit Next() style used by consumers
// that are not loops (timers, HTTP handlers, tests stepping one frame at a time).
package step

import "iter"

// Cursor pulls snapshots out of a generator one at a time.
// It is not safe for concurrent use.
type Cursor[S any] struct {
	next  func() (S, bool)
	stop  func()
	last  S
	steps int
	done  bool
}

// NewCursor starts a pull-style cursor over seq.
// Call Stop when abandoning the cursor before it is exhausted.
func NewCursor[S any](seq iter.Seq[S]) *Cursor[S] {
	next, stop := iter.Pull(seq)
	return &Cursor[S]{next: next, stop: stop}
}

// Next advances the generator and returns the next snapshot.
// ok is false once the generator has finished; the cursor then stays done.
func (c *Cursor[S]) Next() (s S, ok bool) {
	if c.done {
		return s, false
	}
	s, ok = c.next()
	if !ok {
		c.done = true
		c.stop()
		return s, false
	}
	c.last = s
	c.steps++

	return s, true
}

// Last returns the most recent snapshot handed out by Next.
// ok is false if Next never returned a snapshot.
func (c *Cursor[S]) Last() (S, bool) {
	return c.last, c.steps > 0
}

// Steps reports how many snapshots have been pulled so far.
func (c *Cursor[S]) Steps() int { return c.steps }

// Done reports whether the generator has been exhausted or stopped.
func (c *Cursor[S]) Done() bool { return c.done }

// Stop abandons the generator. It is safe to call more than once.
func (c *Cursor[S]) Stop() {
	if !c.done {
		c.done = true
		c.stop()
	}
}

// Last drains seq and returns its final snapshot.
// ok is false for a generator that yields nothing.
func Last[S any](seq iter.Seq[S]) (last S, ok bool) {
	for s := range seq {
		last, ok = s, true
	}

	return last, ok
}

// Count drains seq and returns the number of snapshots it produced.
func Count[S any](seq iter.Seq[S]) int {
	n := 0
	for range seq {
		n++
	}

	return n
}

// Take returns a generator that stops after at most n snapshots of seq.
// n <= 0 yields nothing.
func Take[S any](seq iter.Seq[S], n int) iter.Seq[S] {
	return func(yield func(S) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for s := range seq {
			if !yield(s) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}
