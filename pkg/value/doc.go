// Package value models untyped documents as a tagged variant.
//
// A Value is exactly one of undefined, null, bool, number, string, array,
// object or time. Parsers inspect the Kind of a Value instead of testing Go
// dynamic types. Values come from DecodeJSON, DecodeYAML, FromAny or the
// constructors, and never change once built. Only FromAny and Time produce
// time values; the decoders leave timestamps as strings.
package value
