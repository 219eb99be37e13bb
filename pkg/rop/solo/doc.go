// Package solo contains single-value, synchronous primitives that operate
// on Result[T]. They are the building blocks parsers are composed from.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - AndThen: move from Result[In] to Result[Out] through a fallible step
// - Map/MapError: transform the success value or the error
// - Try: call a function (Out, error) and convert error to failure
// - ToOption: forget the error, keep presence
// - DoubleTee: side effects on success or failure
// - Finally: reduce to a concrete value via success/error handlers
package solo
