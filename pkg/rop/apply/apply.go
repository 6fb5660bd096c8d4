package apply

import "github.com/ib-77/tweetrop/pkg/rop"

func Pure[A any](x A) rop.Result[A] {
	return rop.Success(x)
}

// ApplyFn applies the boxed function to the boxed argument.
func ApplyFn[A, B any](f rop.Result[func(A) B], x rop.Result[A]) rop.Result[B] {
	return rop.FlatMap(f, func(fn func(A) B) rop.Result[B] {
		return rop.Map(x, fn)
	})
}

// ApplyFnKeepArg is ApplyFn that also hands the argument forward, so the next
// stage can compute from it.
func ApplyFnKeepArg[A, B any](f rop.Result[func(A) B], x rop.Result[A]) rop.Result[rop.Pair[B, A]] {
	return rop.FlatMap(f, func(fn func(A) B) rop.Result[rop.Pair[B, A]] {
		return rop.Map(x, func(a A) rop.Pair[B, A] {
			return rop.NewPair(fn(a), a)
		})
	})
}

// ApplyStep feeds the value carried by f into the fallible step held by x and
// applies the partially applied function in f to the step's output. The step
// output is kept for the next stage.
func ApplyStep[A, B, C any](f rop.Result[rop.Pair[func(B) C, A]],
	x rop.Result[func(A) rop.Result[B]]) rop.Result[rop.Pair[C, B]] {

	return rop.FlatMap(f, func(acc rop.Pair[func(B) C, A]) rop.Result[rop.Pair[C, B]] {
		return rop.FlatMap(x, func(step func(A) rop.Result[B]) rop.Result[rop.Pair[C, B]] {
			return rop.Map(step(acc.Second), func(b B) rop.Pair[C, B] {
				return rop.NewPair(acc.First(b), b)
			})
		})
	})
}

// ApplyStepDrop is ApplyStep for the last stage: only the applied value is kept.
func ApplyStepDrop[A, B, C any](f rop.Result[rop.Pair[func(B) C, A]],
	x rop.Result[func(A) rop.Result[B]]) rop.Result[C] {

	return rop.Map(ApplyStep(f, x), func(p rop.Pair[C, B]) C {
		return p.First
	})
}
