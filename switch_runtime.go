//go:build !portable

package generator

import (
	"unsafe"
)

var _ unsafe.Pointer

// coro is the runtime's coroutine object. It is opaque to us; we only hand
// it back to the runtime functions below.
type coro struct{}

//go:linkname newcoro runtime.newcoro
func newcoro(func(*coro)) *coro

//go:linkname coroswitch runtime.coroswitch
func coroswitch(*coro)

// execContext is the execution context of a generator, backed by the
// runtime's native coroutine switch. This is the only type in the package
// that touches raw execution state: coroswitch saves the stack pointer and
// register set of the calling side and restores the other side's, in a
// direct handoff with no scheduler round trip.
//
// The transfer value does not travel through here; it rides in the Context
// slots, which the handoff makes visible to the resumed side.
type execContext struct {
	c *coro
}

// newExecContext reserves an execution context that will run body on its
// own stack. Nothing executes until the first resume.
func newExecContext(body func()) *execContext {
	e := &execContext{}
	e.c = newcoro(func(*coro) { body() })
	return e
}

// resume switches from the caller into the generator's saved context. It
// returns when the generator switches back out.
func (e *execContext) resume() {
	coroswitch(e.c)
}

// yield switches from inside the generator back into the resumer's saved
// context. It returns when the generator is next resumed.
func (e *execContext) yield() {
	coroswitch(e.c)
}

// finish is called on the generator's stack after the body has returned and
// the terminal phase is published. Returning from the body performs the
// final switch back to the resumer, so there is nothing left to do here.
func (e *execContext) finish() {}
