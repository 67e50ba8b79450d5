package generator_test

import (
	"fmt"

	"github.com/stackful/generator"
)

func ExampleNew() {
	g, err := generator.New(func(ctx *generator.Context[int, int], arg int) int {
		a := ctx.Yield(arg + 1)
		b := ctx.Yield(a + 1)
		return a + b
	})
	if err != nil {
		panic(err)
	}

	for _, v := range []int{10, 20, 5, 0} {
		r := g.Resume(v)
		fmt.Println(r.Kind, r.Value)
	}

	// Output:
	// Yielded 11
	// Yielded 21
	// Completed 25
	// Exhausted 0
}

func ExampleGenerator_Values() {
	fib, err := generator.New(func(ctx *generator.Context[struct{}, int], _ struct{}) int {
		a, b := 0, 1
		for {
			ctx.Yield(a)
			a, b = b, a+b
		}
	})
	if err != nil {
		panic(err)
	}

	for v := range fib.Values() {
		if v > 30 {
			break
		}
		fmt.Print(v, " ")
	}
	fmt.Println()

	// Output:
	// 0 1 1 2 3 5 8 13 21
}
