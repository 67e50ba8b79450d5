package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/stackful/generator"
)

func TestStackLimitValidation(t *testing.T) {
	entry := func(_ *generator.Context[int, int], _ int) int { return 0 }

	_, err := generator.New(entry, generator.WithStackLimit(100))
	assert.ErrorIs(t, err, generator.ErrAllocation)

	_, err = generator.New(entry, generator.WithStackLimit(-1))
	assert.ErrorIs(t, err, generator.ErrAllocation)

	g, err := generator.New(entry, generator.WithStackLimit(64<<10))
	require.NoError(t, err)
	g.Stop()
}

func TestStackLimitAllowsShallowGenerators(t *testing.T) {
	defer goleak.VerifyNone(t)

	g, err := generator.New(func(ctx *generator.Context[int, int], arg int) int {
		v := arg
		for i := 0; i < 8; i++ {
			ctx.Guard()
			v = ctx.Yield(v + 1)
		}
		return v
	}, generator.WithStackLimit(1<<20))
	require.NoError(t, err)

	v := 0
	for i := 0; i < 8; i++ {
		r := g.Resume(v)
		require.Equal(t, generator.Yielded, r.Kind)
		v = r.Value
	}
	assert.Equal(t, generator.Completed, g.Resume(v).Kind)
}

func TestStackLimitConvertsOverflowToFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	g, err := generator.New(func(ctx *generator.Context[int, int], _ int) int {
		var deep func(n int) int
		deep = func(n int) int {
			var pad [1024]byte
			pad[0] = byte(n)
			ctx.Guard()
			if n == 0 {
				return int(pad[0])
			}
			return deep(n-1) + int(pad[0])
		}
		return deep(4096)
	}, generator.WithStackLimit(16<<10))
	require.NoError(t, err)

	r := g.Resume(0)
	require.Equal(t, generator.Failed, r.Kind)
	assert.ErrorIs(t, r.Err, generator.ErrStackOverflow)
	assert.True(t, g.Done())
	assert.Equal(t, generator.Exhausted, g.Resume(0).Kind)
}

func TestGuardOutsideGeneratorPanics(t *testing.T) {
	defer goleak.VerifyNone(t)

	var leaked *generator.Context[int, int]
	g, err := generator.New(func(ctx *generator.Context[int, int], _ int) int {
		leaked = ctx
		ctx.Yield(0)
		return 0
	}, generator.WithStackLimit(64<<10))
	require.NoError(t, err)
	defer g.Stop()

	require.Equal(t, generator.Yielded, g.Resume(0).Kind)
	assert.Panics(t, func() { leaked.Guard() })
}
