// Package oneshot implements a synchronous single-value handoff between
// exactly one producer and exactly one consumer.
//
// A channel is created by [New], which returns a linked [Setter] and
// [Getter] pair sharing a single slot. The producer resolves the slot
// exactly once, either by delivering a value with [Setter.Set] or by
// abandoning delivery with [Setter.Cancel]. The consumer observes the
// outcome exactly once, either by blocking in [Getter.Wait] or by polling
// with [Getter.Poll]. The outcome is reported as a [value.Maybe]: present
// if a value was delivered, absent if the producer gave up.
//
// Each handle is single-use: once its consuming operation has run, the
// handle is spent, and reusing it panics. Handles are not safe for
// concurrent use by multiple goroutines; each side is meant to be owned
// by one goroutine at a time.
//
// The producer must guarantee the slot resolves on every path, including
// error paths, so the consumer is never left blocked. The idiom is to
// defer Cancel immediately upon taking ownership of a Setter:
//
//	s, g := oneshot.New[int]()
//	go func() {
//		defer s.Cancel() // a no-op if Set is reached
//		v, err := compute()
//		if err == nil {
//			s.Set(v)
//		}
//	}()
package oneshot

import (
	"sync"

	"github.com/creachadair/mds/value"
)

// New constructs a new channel and returns its linked producer and
// consumer handles. The slot begins unresolved; it resolves exactly once,
// by whichever of [Setter.Set] or [Setter.Cancel] runs first.
func New[T any]() (*Setter[T], *Getter[T]) {
	s := new(slot[T])
	return &Setter[T]{slot: s}, &Getter[T]{slot: s}
}

// state records how (and whether) a slot has been resolved.
type state byte

const (
	statePending    state = iota // no outcome yet
	stateDelivered               // producer delivered a value
	stateSetterGone              // producer cancelled without delivering
)

// A slot is the shared core of a channel, jointly owned by one [Setter]
// and one [Getter]. Its cell resolves at most once; after resolution the
// state never changes again.
type slot[T any] struct {
	μ     sync.Mutex
	state state
	val   T             // valid only when state == stateDelivered
	ready chan struct{} // lazily created by a waiter, closed on resolution

	getterGone bool // the consumer handle was consumed or cancelled
}

// resolve moves the slot from pending to next and wakes any waiter.
// Calls after the first resolution have no effect.
func (s *slot[T]) resolve(next state, v T) {
	s.μ.Lock()
	defer s.μ.Unlock()
	if s.state != statePending {
		return
	}
	s.state = next
	s.val = v
	if s.ready != nil {
		close(s.ready)
		s.ready = nil
	}
}

// wait blocks until the slot resolves, then takes and returns the
// outcome. The lock is not held while blocked; the state is re-checked
// after each wake.
func (s *slot[T]) wait() value.Maybe[T] {
	s.μ.Lock()
	for s.state == statePending {
		if s.ready == nil {
			s.ready = make(chan struct{})
		}
		ready := s.ready
		s.μ.Unlock()
		<-ready
		s.μ.Lock()
	}
	defer s.μ.Unlock()
	return s.takeLocked()
}

// takeLocked returns the resolved outcome and marks the consumer side
// gone. The caller must hold s.μ, and the slot must be resolved.
func (s *slot[T]) takeLocked() value.Maybe[T] {
	s.getterGone = true
	if s.state == stateDelivered {
		return value.Just(s.val)
	}
	return value.Absent[T]()
}
