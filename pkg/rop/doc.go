// Package rop defines Result[T], a value that is either a successful payload
// or a failure carrying an error, together with the FlatMap primitive every
// other combinator in this module is built from.
//
// Failures are values: nothing in rop panics or recovers, and a failure is
// forwarded unchanged through FlatMap and Map.
package rop
