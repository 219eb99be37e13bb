// Package parser validates untyped documents and extracts typed values from
// them.
//
// A Parser[A] wraps a function from value.Value to rop.Result[A]. Parsers are
// described once, usually as a schema built from the combinators below, and
// then run over many inputs:
//
//	type Person struct {
//		Name string
//		Age  int
//		Nick option.Option[string]
//	}
//
//	var person = parser.Map3(
//		parser.Field("name", parser.String),
//		parser.Field("age", parser.Int),
//		parser.Maybe(parser.Field("nick", parser.String)),
//		func(name string, age int, nick option.Option[string]) Person {
//			return Person{name, age, nick}
//		},
//	)
//
//	doc, _ := value.DecodeJSON(data)
//	p, err := person.Run(doc).Get()
//
// Building blocks:
// - Succeed/Fail/Lazy: parsers that ignore or defer on the input
// - String/Number/Int/Bool/Date: primitive values
// - Field/Index/At/Array: walk into objects and arrays
// - Maybe: turn a failure into option.None
// - Map/Apply/All/Map2..Map8: combine values parsed from the same input
// - AndThen/Validate/OneOf: dependent parsing and alternatives
//
// Failures are *Error values carrying the location of the offending value;
// errors.Is matches them against the Err* sentinels. Parsers never panic on
// malformed input.
package parser
