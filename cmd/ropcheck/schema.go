package main

import (
	"fmt"
	"time"

	"github.com/ib-77/ropparse/pkg/parser"
	"github.com/ib-77/ropparse/pkg/rop"
	"github.com/ib-77/ropparse/pkg/rop/option"
	"github.com/ib-77/ropparse/pkg/value"
)

var anyValue = parser.New(func(in value.Value) rop.Result[value.Value] {
	return rop.Success(in)
})

func typed(as string) (parser.Parser[value.Value], error) {
	switch as {
	case "", "any":
		return anyValue, nil
	case "string":
		return parser.Map(parser.String, value.String), nil
	case "number":
		return parser.Map(parser.Number, value.Number), nil
	case "int":
		return parser.Map(parser.Int, func(n int) value.Value { return value.Number(float64(n)) }), nil
	case "bool":
		return parser.Map(parser.Bool, value.Bool), nil
	case "date":
		return parser.Map(parser.Date, func(t time.Time) value.Value { return value.Time(t.UTC()) }), nil
	}
	return parser.Parser[value.Value]{}, fmt.Errorf("unknown type %q", as)
}

// buildParser turns the command line into the parser run on every document.
func buildParser(opts options) (parser.Parser[option.Option[value.Value]], error) {
	target, err := typed(opts.As)
	if err != nil {
		return parser.Parser[option.Option[value.Value]]{}, err
	}

	if path := opts.path(); len(path) > 0 {
		target = parser.At(path, target)
	}

	if opts.Optional {
		return parser.Maybe(target), nil
	}
	return parser.Map(target, option.Some[value.Value]), nil
}
