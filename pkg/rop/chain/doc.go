// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
//   - Start/FromValue: begin a chain from a Result[T] or value
//   - Then: switch to a new Result[U] via a function
//   - Map: transform the successful value (T -> U)
//   - Ensure: run side effects on success without changing the result
//   - Finally: collapse the chain into a final value via handlers
package chain
