package generator

import "errors"

var (
	// ErrAllocation is returned by New when the generator's execution
	// context cannot be set up as configured, for example when the
	// requested stack limit is below the supported minimum.
	ErrAllocation = errors.New("generator: stack reservation failed")

	// ErrReentrantResume is reported when Resume is called on a generator
	// that is already running, either from inside its own entry function
	// or from a second concurrent caller.
	ErrReentrantResume = errors.New("generator: generator is already running")

	// ErrStackOverflow is the failure cause recorded when a generator
	// exceeds the stack limit it was created with.
	ErrStackOverflow = errors.New("generator: stack limit exceeded")
)

// Kind discriminates the possible outcomes of a Resume call.
type Kind int

const (
	// Yielded means the generator suspended at a yield point; the yielded
	// value is in Result.Value.
	Yielded Kind = iota

	// Completed means the entry function returned; its return value is in
	// Result.Value. The generator is exhausted afterwards.
	Completed

	// Exhausted means the generator was already dead when Resume was
	// called. No switch is performed; resuming a dead generator any number
	// of times keeps returning Exhausted.
	Exhausted

	// Failed means a panic escaped the entry function. The captured cause
	// is in Result.Err and the generator is exhausted afterwards.
	Failed

	// Reentrant means the Resume call was rejected because the generator
	// was already running; Result.Err is ErrReentrantResume. The
	// generator's state is unaffected.
	Reentrant
)

// String returns the name of the result kind.
func (k Kind) String() string {
	switch k {
	case Yielded:
		return "Yielded"
	case Completed:
		return "Completed"
	case Exhausted:
		return "Exhausted"
	case Failed:
		return "Failed"
	case Reentrant:
		return "Reentrant"
	default:
		return "Unknown"
	}
}

// Result is the outcome of one Resume call.
//
// Value is meaningful only when Kind is Yielded or Completed, and Err only
// when Kind is Failed or Reentrant.
type Result[Out any] struct {
	Kind  Kind
	Value Out
	Err   error
}
