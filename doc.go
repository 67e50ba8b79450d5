// Package generator implements stackful generators: independently
// resumable computations that can suspend at an arbitrary point inside
// nested calls and later continue exactly where they left off, exchanging
// one value with their resumer on every transfer of control.
//
// A generator is created with New, which takes an entry function. The entry
// function receives the generator's Context and the first value passed to
// Resume; inside the generator, Context.Yield suspends execution and hands a
// value back to the resumer. Each call to Resume drives the generator until
// its next yield point, its completion, or a failure, and reports which of
// those happened in a Result.
//
// Scheduling is strictly cooperative: at any instant exactly one of the
// resumer and the generator is executing, and control moves between them
// only at Resume and Yield. Panics raised inside a generator never unwind
// across the switch boundary; they are captured and surfaced to the resumer
// as a Failed result, after which the generator is exhausted.
//
// By default the control transfer rides on the runtime's native coroutine
// switch. Building with the "portable" tag selects an equivalent
// implementation that parks each generator on a dedicated goroutine instead.
package generator
