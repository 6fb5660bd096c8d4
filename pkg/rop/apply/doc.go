// Package apply holds the pure combinators used to assemble a value from
// several dependent, fallible steps:
//   - Pure: lift a plain value into a successful Result
//   - ApplyFn / ApplyFnKeepArg: applicative apply of a boxed function to a boxed argument
//   - ApplyStep / ApplyStepDrop: applicative apply where the argument is itself a fallible step
//   - Curry2 / Curry3 / Uncurry3: turn n-ary functions into chains of single-argument ones
//   - ApplyResult / ApplyResultOf / ApplyResultOfDrop: flatMap adapters that run a
//     follow-up only when the upstream step succeeded
//
// Every combinator checks for a failure on the function side first, then on
// the argument side, and forwards the first one it meets without wrapping it.
package apply
