package generator

// Unwind initiates stack unwinding in a generator. Calling it from inside a
// generator aborts the current segment, runs the pending defers on the
// generator's stack, and leaves the generator dead; the resumer observes an
// Exhausted result.
func Unwind() {
	panic(unwind)
}

var unwind struct{}

// Unwinding reports whether stack unwinding is taking place, either because
// the generator was stopped or because it called Unwind. It should be called
// inside a defer and given the value returned by recover(); a defer that
// recovers during unwinding must re-panic with the same value to let the
// teardown complete.
func Unwinding(v any) bool {
	return v == unwind
}
