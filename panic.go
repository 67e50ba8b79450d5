package generator

import (
	"fmt"
	"runtime/debug"
)

// panicError is the failure cause recorded when a panic is captured at the
// launcher boundary. It keeps the stack trace of the generator at the point
// of the panic, which would otherwise be lost: the resumer's own stack has
// no frames of the generator on it.
type panicError struct {
	value any
	stack []byte
}

func (p *panicError) Error() string {
	return fmt.Sprintf("generator: panic: %v", p.value)
}

// ErrorWithStack formats the panic value together with the generator stack
// trace captured when the panic crossed the launcher.
func (p *panicError) ErrorWithStack() string {
	return fmt.Sprintf("generator: panic: %v\n\n%s", p.value, p.stack)
}

func (p *panicError) Unwrap() error {
	err, ok := p.value.(error)
	if !ok {
		return nil
	}
	return err
}

func newPanicError(v any) error {
	return &panicError{
		value: v,
		stack: debug.Stack(),
	}
}
