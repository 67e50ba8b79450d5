//go:build portable

package generator

// execContext is the execution context of a generator, backed by a
// dedicated goroutine parked on a single unbuffered channel. Every control
// transfer is one send/receive pair on that channel, so exactly one of the
// resumer and the generator is runnable between any two transfers; the
// channel also orders the accesses to the Context transfer slots.
//
// This backend avoids the runtime coroutine linkage and works on any
// platform the race detector and gccgo-style toolchains support, at the
// cost of a scheduler round trip per switch.
type execContext struct {
	next chan struct{}
}

// newExecContext reserves an execution context that will run body on its
// own stack. The goroutine parks immediately; nothing executes until the
// first resume.
func newExecContext(body func()) *execContext {
	e := &execContext{next: make(chan struct{})}
	go func() {
		<-e.next
		body()
	}()
	return e
}

// resume switches from the caller into the generator: the send wakes the
// parked generator, the receive parks the caller until the generator
// switches back out or finishes.
func (e *execContext) resume() {
	e.next <- struct{}{}
	<-e.next
}

// yield switches from inside the generator back to the resumer: the send
// releases the resumer blocked in resume, the receive parks the generator
// until it is next resumed.
func (e *execContext) yield() {
	e.next <- struct{}{}
	<-e.next
}

// finish is called on the generator's stack after the body has returned and
// the terminal phase is published. Closing the channel releases the resumer
// for the last time; the goroutine then exits.
func (e *execContext) finish() {
	close(e.next)
}
