package apply

import "github.com/ib-77/tweetrop/pkg/rop"

// ApplyResult pairs the payload of result with the output of action on it.
// action runs only when result succeeded.
func ApplyResult[A, B any](result rop.Result[A], action func(A) B) rop.Result[rop.Pair[A, B]] {
	return rop.Map(result, func(a A) rop.Pair[A, B] {
		return rop.NewPair(a, action(a))
	})
}

// ApplyResultOf lifts the fallible step fn into a FlatMap continuation. The
// continuation receives the step input together with the follow-up action,
// runs fn, and on success pairs fn's output with the action applied to it.
func ApplyResultOf[A, B, C any](fn func(C) rop.Result[A]) func(rop.Pair[C, func(A) B]) rop.Result[rop.Pair[A, B]] {
	return func(in rop.Pair[C, func(A) B]) rop.Result[rop.Pair[A, B]] {
		return ApplyResult(fn(in.First), in.Second)
	}
}

// ApplyResultOfDrop is ApplyResultOf that keeps only the action's output.
func ApplyResultOfDrop[A, B, C any](fn func(C) rop.Result[A]) func(rop.Pair[C, func(A) B]) rop.Result[B] {
	return func(in rop.Pair[C, func(A) B]) rop.Result[B] {
		return rop.Map(fn(in.First), in.Second)
	}
}
