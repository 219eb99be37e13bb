package parser

import (
	"fmt"
	"strconv"

	"github.com/ib-77/ropparse/pkg/rop"
	"github.com/ib-77/ropparse/pkg/rop/option"
	"github.com/ib-77/ropparse/pkg/rop/solo"
	"github.com/ib-77/ropparse/pkg/value"
)

// Field runs p over the member called name. It fails when the input is not
// an object or the member is missing. A member holding an undefined value
// counts as missing.
func Field[A any](name string, p Parser[A]) Parser[A] {
	return New(func(in value.Value) rop.Result[A] {
		if !in.IsObject() {
			return rop.Fail[A](newError(ErrNotObject, in,
				fmt.Sprintf("Can't lookup field '%s' on something that isn't an object", name)))
		}

		v, ok := in.Lookup(name)
		if !ok || v.IsUndefined() {
			return rop.Fail[A](newError(ErrMissingField, in,
				fmt.Sprintf("Field %s doesn't exist in %s", name, in)))
		}

		return solo.MapError(p.Run(v), func(err error) error {
			return within(err, name)
		})
	})
}

// Index runs p over the i-th item of an array. An undefined item counts as
// missing.
func Index[A any](i int, p Parser[A]) Parser[A] {
	return New(func(in value.Value) rop.Result[A] {
		if !in.IsArray() {
			return rop.Fail[A](newError(ErrNotArray, in,
				fmt.Sprintf("Can't lookup index %d on something that isn't an Array", i)))
		}

		v, ok := in.Index(i)
		if !ok || v.IsUndefined() {
			return rop.Fail[A](newError(ErrMissingIndex, in,
				fmt.Sprintf("Nothing found at index %d", i)))
		}

		return solo.MapError(p.Run(v), func(err error) error {
			return within(err, indexSegment(i))
		})
	})
}

// At follows a list of field names into nested objects and runs p on what it
// finds there. An empty path always fails.
func At[A any](path []string, p Parser[A]) Parser[A] {
	switch len(path) {
	case 0:
		return New(func(in value.Value) rop.Result[A] {
			return rop.Fail[A](newError(ErrEmptyPath, in,
				fmt.Sprintf("I need a list of fields to lookup a location in object %s", in)))
		})
	case 1:
		return Field(path[0], p)
	}
	return Field(path[0], At(path[1:], p))
}

// Array parses every item with p. The first failing item fails the whole
// array and no partial result is kept.
func Array[A any](p Parser[A]) Parser[[]A] {
	return New(func(in value.Value) rop.Result[[]A] {
		if !in.IsArray() {
			return rop.Fail[[]A](newError(ErrNotArray, in,
				fmt.Sprintf("Could not parse %s as an array", in)))
		}

		out := make([]A, 0, in.Len())
		for i := 0; i < in.Len(); i++ {
			item, _ := in.Index(i)
			r := p.Run(item)
			if r.IsFailure() {
				return rop.FailWith[A, []A](r, within(r.Err(), indexSegment(i)))
			}
			out = append(out, r.Result())
		}
		return rop.Success(out)
	})
}

// Maybe never fails: a failure of p becomes None and its error is dropped.
func Maybe[A any](p Parser[A]) Parser[option.Option[A]] {
	return New(func(in value.Value) rop.Result[option.Option[A]] {
		return rop.Success(solo.ToOption(p.Run(in)))
	})
}

func indexSegment(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
