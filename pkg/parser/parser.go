package parser

import (
	"sync"

	"github.com/ib-77/ropparse/pkg/rop"
	"github.com/ib-77/ropparse/pkg/value"
)

// Parser turns an untyped value into an A or a failure. Parsers hold no state
// and may be run concurrently.
type Parser[A any] struct {
	run func(in value.Value) rop.Result[A]
}

func New[A any](f func(in value.Value) rop.Result[A]) Parser[A] {
	return Parser[A]{run: f}
}

// Run parses in. The zero Parser fails.
func (p Parser[A]) Run(in value.Value) rop.Result[A] {
	if p.run == nil {
		return rop.Fail[A](newError(ErrFailed, in, "parser is not initialised"))
	}
	return p.run(in)
}

// Run returns the parsing function of p.
func Run[A any](p Parser[A]) func(in value.Value) rop.Result[A] {
	return p.Run
}

// RunAny converts a plain Go value with value.FromAny before parsing it.
func RunAny[A any](p Parser[A], in any) rop.Result[A] {
	v, err := value.FromAny(in)
	if err != nil {
		return rop.Fail[A](newError(ErrWrongKind, value.Undefined(), err.Error()))
	}
	return p.Run(v)
}

// Succeed ignores the input and yields a.
func Succeed[A any](a A) Parser[A] {
	return New(func(value.Value) rop.Result[A] {
		return rop.Success(a)
	})
}

// Fail ignores the input and fails with msg.
func Fail[A any](msg string) Parser[A] {
	return New(func(in value.Value) rop.Result[A] {
		return rop.Fail[A](newError(ErrFailed, in, msg))
	})
}

// Lazy defers building the parser until it is first run, which allows
// recursive schemas.
func Lazy[A any](build func() Parser[A]) Parser[A] {
	get := sync.OnceValue(build)
	return New(func(in value.Value) rop.Result[A] {
		return get().Run(in)
	})
}
