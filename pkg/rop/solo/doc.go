// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T] and thread a context.Context through to their callbacks.
//
// Highlights:
//   - Succeed/Fail: construct Result[T]
//   - Switch: move from Result[In] to Result[Out] (FlatMap with a context)
//   - Map: transform successful values
//   - FailOnError: keep the value but fail when a check returns an error
//   - Tee/DoubleTee: side-effect helpers
//   - Finally: reduce to a concrete value via success/error handlers
package solo
