package generator

import "unsafe"

// minStackLimit is the smallest stack limit accepted by New. Anything below
// it could not hold even the launcher frame and would kill the generator on
// its first instruction.
const minStackLimit = 4096

type options struct {
	stackLimit int
}

// Option configures a generator at creation.
type Option func(*options)

// WithStackLimit sets an advisory ceiling, in bytes, on the generator's
// stack use. The generator's stack is managed by the runtime and grows on
// demand, so the limit is not a hard allocation bound; it is a canary
// checked at every yield point and at explicit Context.Guard calls, turning
// runaway stack growth into a Failed result carrying ErrStackOverflow
// instead of unbounded memory use.
//
// Limits below an implementation minimum are rejected by New with
// ErrAllocation. The default is no limit.
func WithStackLimit(bytes int) Option {
	return func(o *options) {
		o.stackLimit = bytes
	}
}

// stackmark returns an address on the current stack, used as an anchor for
// measuring stack depth.
func stackmark() uintptr {
	var m byte
	return uintptr(unsafe.Pointer(&m))
}

// stackDistance approximates the number of stack bytes in use between the
// launcher frame anchored at base and the current point of execution. The
// runtime may relocate a growing stack, which skews the measurement; the
// value is an estimate that errs toward over-reporting, which is the safe
// direction for a defensive limit.
func stackDistance(base uintptr) uintptr {
	cur := stackmark()
	if cur < base {
		return base - cur
	}
	return cur - base
}
