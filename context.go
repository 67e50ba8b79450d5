package generator

import (
	"fmt"
	"sync/atomic"
)

// State describes where a generator is in its lifecycle.
type State int32

const (
	// StateFresh: the execution context exists but the entry function has
	// never run.
	StateFresh State = iota

	// StateRunning: control is currently inside the generator, between an
	// inbound switch and its matching outbound switch.
	StateRunning

	// StateSuspended: the generator is parked at a yield point with its
	// execution context saved.
	StateSuspended

	// StateDead: the entry function returned, failed, or was stopped. A
	// dead generator never re-enters any other state.
	StateDead
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateFresh:
		return "Fresh"
	case StateRunning:
		return "Running"
	case StateSuspended:
		return "Suspended"
	case StateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Context is the generator-side handle, passed to the entry function. It
// carries the transfer slots and the yield operation; it must only be used
// from code executing on the generator's own stack.
type Context[In, Out any] struct {
	// Transfer slots. Each is written by the side that holds control and
	// read by the other side after the switch; the handoff itself orders
	// the accesses, no locking is involved.
	in  In
	out Out

	// busy is held for the whole critical section of a Resume or Stop,
	// from before the inbound switch until after the outcome is read.
	// It is the only gate against reentrant and concurrent resumption.
	busy atomic.Bool

	// phase is fresh, suspended or dead. It is advanced only by the side
	// holding control, and read by the resumer while it holds busy.
	phase atomic.Int32

	// stopped is set by Stop before switching in; the woken yield point
	// reacts by unwinding instead of returning.
	stopped bool

	// err records a panic captured at the launcher boundary. It is
	// surfaced to the resumer exactly once, on the Resume that observed
	// the death.
	err error

	// stack accounting, see stack.go.
	base  uintptr
	limit int

	exec *execContext
}

const (
	phaseFresh = int32(iota)
	phaseSuspended
	phaseDead
)

// Yield suspends the generator, delivering v to the resumer as a Yielded
// result. It returns once the generator is resumed again, and its return
// value is the argument of that later Resume call.
//
// Yield panics when called from outside a running generator.
func (c *Context[In, Out]) Yield(v Out) In {
	if !c.busy.Load() {
		panic("generator: Yield called outside of a running generator")
	}
	if c.stopped {
		panic(unwind)
	}
	c.checkStack()
	c.out = v
	c.phase.Store(phaseSuspended)
	c.exec.yield()
	if c.stopped {
		panic(unwind)
	}
	return c.in
}

// Guard enforces the generator's configured stack limit at the point of
// call. Generators that recurse deeply between yield points can call it on
// the way down to convert a stack overrun into a detectable failure: Guard
// panics with a cause matching ErrStackOverflow, which the launcher turns
// into a Failed result for the resumer.
//
// Guard is a no-op for generators created without WithStackLimit, and
// panics when called from outside a running generator.
func (c *Context[In, Out]) Guard() {
	if !c.busy.Load() {
		panic("generator: Guard called outside of a running generator")
	}
	c.checkStack()
}

func (c *Context[In, Out]) checkStack() {
	if c.limit <= 0 {
		return
	}
	if used := stackDistance(c.base); used > uintptr(c.limit) {
		panic(fmt.Errorf("%w: ~%d bytes used of %d", ErrStackOverflow, used, c.limit))
	}
}
