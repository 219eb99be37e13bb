// Package option provides Option[T], a value that is either Some or None.
//
// - Some/None/FromNullable: construct an Option
// - WithDefault: unwrap with a fallback
// - Map/Map2/AndThen: transform present values, pass None through
package option
