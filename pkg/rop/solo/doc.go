// Package solo contains single-value, synchronous primitives that operate
// on Result[T]. They run inside a unit of work and decide what that unit
// reports back.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Map: transform a successful value
// - Try: call a function (Out, error) and convert error to failure
// - Finally: reduce to a concrete value via success/error handlers
package solo
