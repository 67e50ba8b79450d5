package generator

import "fmt"

// Generator is the caller-side handle of a stackful generator. Its zero
// value is not usable; create generators with New.
type Generator[In, Out any] struct {
	ctx *Context[In, Out]
}

// New creates a generator that executes entry on its own execution context.
//
// No code runs yet: entry is invoked on the first call to Resume, receiving
// the generator's Context and that first Resume argument. The value entry
// returns becomes the Completed result of the final Resume.
//
// New fails with an error matching ErrAllocation when the execution context
// cannot be configured as requested.
func New[In, Out any](entry func(*Context[In, Out], In) Out, opts ...Option) (*Generator[In, Out], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.stackLimit != 0 && o.stackLimit < minStackLimit {
		return nil, fmt.Errorf("%w: stack limit %d is below the %d byte minimum", ErrAllocation, o.stackLimit, minStackLimit)
	}

	g := &Generator[In, Out]{ctx: &Context[In, Out]{limit: o.stackLimit}}
	g.ctx.exec = newExecContext(func() { g.launch(entry) })
	return g, nil
}

// launch is the entry trampoline, the first and last frame on the
// generator's stack. It delivers the first Resume argument to entry and
// guarantees that no panic ever unwinds across the switch boundary: failures
// are recorded in the context and reported as the terminal result. The dead
// phase is published before control returns, so the resumer observes it
// consistently with the outcome.
func (g *Generator[In, Out]) launch(entry func(*Context[In, Out], In) Out) {
	c := g.ctx
	c.base = stackmark()

	defer func() {
		switch v := recover(); {
		case v == nil:
		case Unwinding(v):
			c.stopped = true
		default:
			c.err = newPanicError(v)
		}
		c.phase.Store(phaseDead)
		c.exec.finish()
	}()

	if !c.stopped {
		c.out = entry(c, c.in)
	}
}

// Resume transfers control into the generator, delivering v, and returns
// when the generator suspends, completes, or fails.
//
// On the first call, v is the argument of the entry function; on subsequent
// calls it becomes the return value of the Yield the generator is parked at.
// Resuming a dead generator performs no switch and returns Exhausted;
// resuming a generator that is already running returns Reentrant.
func (g *Generator[In, Out]) Resume(v In) Result[Out] {
	c := g.ctx
	if !c.busy.CompareAndSwap(false, true) {
		return Result[Out]{Kind: Reentrant, Err: ErrReentrantResume}
	}
	defer c.busy.Store(false)

	if c.phase.Load() == phaseDead {
		return Result[Out]{Kind: Exhausted}
	}

	c.in = v
	c.exec.resume()

	if c.phase.Load() == phaseSuspended {
		return Result[Out]{Kind: Yielded, Value: c.out}
	}
	switch {
	case c.err != nil:
		return Result[Out]{Kind: Failed, Err: c.err}
	case c.stopped:
		// The generator unwound itself, see Unwind.
		return Result[Out]{Kind: Exhausted}
	default:
		return Result[Out]{Kind: Completed, Value: c.out}
	}
}

// Stop eagerly tears down a fresh or suspended generator. The generator is
// switched in one last time with a stop request: its pending yield point
// unwinds the stack, running deferred statements in the inverse order of
// their declaration, and the generator becomes dead. If the unwinding itself
// panics, Stop re-panics with the captured cause.
//
// Stop on a dead generator is a no-op, so stopping twice or after completion
// is safe. Stop on a running generator panics: a generator cannot be
// destroyed from within itself or while another caller is inside it.
func (g *Generator[In, Out]) Stop() {
	c := g.ctx
	if !c.busy.CompareAndSwap(false, true) {
		panic("generator: Stop called on a running generator")
	}
	defer c.busy.Store(false)

	if c.phase.Load() == phaseDead {
		return
	}

	c.stopped = true
	c.exec.resume()

	if c.err != nil {
		panic(c.err)
	}
}

// Done reports whether the generator is dead, either because its entry
// function finished or because it was stopped.
func (g *Generator[In, Out]) Done() bool {
	return g.ctx.phase.Load() == phaseDead
}

// State returns the generator's current lifecycle state. The value is a
// snapshot: another goroutine resuming the generator can change it at any
// moment.
func (g *Generator[In, Out]) State() State {
	c := g.ctx
	if c.phase.Load() == phaseDead {
		return StateDead
	}
	if c.busy.Load() {
		return StateRunning
	}
	if c.phase.Load() == phaseSuspended {
		return StateSuspended
	}
	return StateFresh
}

// Run drives g to completion, calling f for each value the generator yields
// and sending back each value that f returns. It returns the generator's
// completion value, or the captured cause if the generator failed.
//
// The generator is run to completion, but f might panic, in which case we
// don't want to leave it suspended and stop it instead.
func Run[In, Out any](g *Generator[In, Out], f func(Out) In) (Out, error) {
	defer func() {
		if !g.Done() && g.State() != StateRunning {
			g.Stop()
		}
	}()

	var (
		v    In
		zero Out
	)
	for {
		switch r := g.Resume(v); r.Kind {
		case Yielded:
			v = f(r.Value)
		case Completed:
			return r.Value, nil
		case Failed, Reentrant:
			return zero, r.Err
		default:
			return zero, nil
		}
	}
}
