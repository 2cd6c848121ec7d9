package oneshot

import "github.com/creachadair/mds/value"

// A Getter is the consumer half of a channel created by [New]. It is
// single-use: a call to [Getter.Wait], a successful [Getter.Poll], or a
// call to [Getter.Cancel] spends the handle.
type Getter[T any] struct {
	slot *slot[T]
	used bool // Wait, a successful Poll, or Cancel has run
}

// IsReady reports whether the channel has already resolved, meaning a
// retrieval will succeed without blocking. It becomes true once the
// producer half has delivered or been cancelled.
//
// The answer is advisory: a false result may be stale by the time the
// caller acts on it. Use [Getter.Poll] to retrieve without blocking.
func (g *Getter[T]) IsReady() bool {
	g.slot.μ.Lock()
	defer g.slot.μ.Unlock()
	return g.slot.state != statePending
}

// Wait blocks until the channel resolves and returns the outcome: a
// present value if the producer delivered one, an absent value if the
// producer was cancelled. Wait spends the handle; it panics if the
// handle was already spent.
//
// Wait has no timeout. A caller needing bounded waiting should run Wait
// in its own goroutine and compose the result with a timer externally.
func (g *Getter[T]) Wait() value.Maybe[T] {
	if g.used {
		panic("oneshot: Wait on a spent Getter")
	}
	g.used = true
	return g.slot.wait()
}

// Poll is the non-blocking form of [Getter.Wait]. If the channel has
// resolved, Poll spends the handle and returns the outcome with ok true.
// Otherwise it returns an absent value with ok false, and the handle
// remains usable for later calls. Poll panics if the handle was already
// spent.
func (g *Getter[T]) Poll() (_ value.Maybe[T], ok bool) {
	if g.used {
		panic("oneshot: Poll on a spent Getter")
	}
	g.slot.μ.Lock()
	defer g.slot.μ.Unlock()
	if g.slot.state == statePending {
		return value.Absent[T](), false
	}
	g.used = true
	return g.slot.takeLocked(), true
}

// Cancel abandons the consumer half without retrieving the outcome.
// After Cancel, the producer's [Setter.IsNeeded] reports false. Cancel
// never blocks, may be called any number of times, and has no effect
// once the handle is spent.
func (g *Getter[T]) Cancel() {
	if g.used {
		return
	}
	g.used = true
	g.slot.μ.Lock()
	defer g.slot.μ.Unlock()
	g.slot.getterGone = true
}

// String returns a string describing the state of the handle.
// It does not disclose the value.
func (g *Getter[T]) String() string {
	if g.used {
		return "Getter(spent)"
	}
	return "Getter(pending)"
}
