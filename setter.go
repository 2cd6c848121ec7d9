package oneshot

// A Setter is the producer half of a channel created by [New]. It is
// single-use: the first call to [Setter.Set] or [Setter.Cancel] resolves
// the channel and spends the handle.
//
// Exactly one of Set or Cancel must run on every producer path. Since Go
// has no destructors to cancel an abandoned handle automatically, defer
// Cancel as soon as the handle is owned; it is harmless after Set.
type Setter[T any] struct {
	slot *slot[T]
	used bool // Set or Cancel has run
}

// IsNeeded reports whether the consumer half of the channel is still
// live, meaning a delivered value would actually be observed.
//
// The answer is advisory: the consumer may be cancelled at any moment
// after IsNeeded returns. Use it only to skip work that is definitely
// unwanted, never as a correctness guard.
func (s *Setter[T]) IsNeeded() bool {
	s.slot.μ.Lock()
	defer s.slot.μ.Unlock()
	return !s.slot.getterGone
}

// Set delivers v to the consumer, waking it if it is blocked in
// [Getter.Wait], and spends the handle. Set does not block.
// It panics if the handle was already spent.
func (s *Setter[T]) Set(v T) {
	if s.used {
		panic("oneshot: Set on a spent Setter")
	}
	s.used = true
	s.slot.resolve(stateDelivered, v)
}

// Cancel abandons delivery: if Set has not run, the channel resolves
// without a value and the consumer's [Getter.Wait] returns an absent
// outcome. Cancel never blocks, may be called any number of times, and
// has no effect after Set.
func (s *Setter[T]) Cancel() {
	if s.used {
		return
	}
	s.used = true
	var zero T
	s.slot.resolve(stateSetterGone, zero)
}

// String returns a string describing the state of the handle.
// It does not disclose the value.
func (s *Setter[T]) String() string {
	if s.used {
		return "Setter(spent)"
	}
	return "Setter(pending)"
}
