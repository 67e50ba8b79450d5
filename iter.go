package generator

import "iter"

// Values returns an iterator over the values the generator yields, resuming
// it with the zero input each time. The iteration ends when the generator
// completes, fails, or is exhausted; the completion value and any failure
// cause are not part of the sequence, use Resume or Run to observe them.
//
// Breaking out of the loop early stops the generator, so its deferred
// cleanup runs and its execution context is released.
func (g *Generator[In, Out]) Values() iter.Seq[Out] {
	return func(yield func(Out) bool) {
		defer func() {
			if !g.Done() && g.State() != StateRunning {
				g.Stop()
			}
		}()

		var zero In
		for {
			r := g.Resume(zero)
			if r.Kind != Yielded {
				return
			}
			if !yield(r.Value) {
				return
			}
		}
	}
}
