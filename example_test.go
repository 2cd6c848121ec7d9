package oneshot_test

import (
	"errors"
	"fmt"

	"github.com/creachadair/oneshot"
)

func Example() {
	s, g := oneshot.New[string]()

	// The producer delivers its result on one goroutine...
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer s.Cancel() // a no-op once Set has run
		s.Set("all is well")
	}()

	// ...and the consumer blocks until the result arrives.
	fmt.Println(g.Wait().Or("(no answer)"))

	<-done
	// Output:
	// all is well
}

func ExampleSetter_Cancel() {
	compute := func() (int, error) { return 0, errors.New("out of cheese") }

	s, g := oneshot.New[int]()
	go func() {
		// Deferring Cancel guarantees the consumer is woken even when the
		// producer fails before reaching Set.
		defer s.Cancel()
		if v, err := compute(); err == nil {
			s.Set(v)
		}
	}()

	if _, ok := g.Wait().GetOK(); !ok {
		fmt.Println("the producer gave up")
	}
	// Output:
	// the producer gave up
}

func ExampleGetter_Poll() {
	s, g := oneshot.New[int]()

	// Before the producer resolves the channel, Poll reports false and
	// leaves the handle usable for another try.
	if _, ok := g.Poll(); !ok {
		fmt.Println("not ready yet")
	}

	s.Set(42)

	// Once the producer side is done, Poll consumes the handle and
	// returns the outcome without blocking.
	if v, ok := g.Poll(); ok {
		fmt.Println("got", v.Or(0))
	}
	// Output:
	// not ready yet
	// got 42
}
