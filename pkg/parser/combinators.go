package parser

import (
	"fmt"

	"github.com/ib-77/ropparse/pkg/rop"
	"github.com/ib-77/ropparse/pkg/rop/solo"
	"github.com/ib-77/ropparse/pkg/value"
)

// Map applies f to the value parsed by p.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return New(func(in value.Value) rop.Result[B] {
		return solo.Map(p.Run(in), f)
	})
}

// Apply runs pf and then pa over the same input and applies the parsed
// function to the parsed value. The first failure, in that order, wins.
//
// Apply is how parsers of any arity are combined: map a curried function over
// the first parser and Apply the rest one by one. Map2 to Map8 are shorthands
// for that.
func Apply[A, B any](pf Parser[func(A) B], pa Parser[A]) Parser[B] {
	return New(func(in value.Value) rop.Result[B] {
		rf := pf.Run(in)
		if rf.IsFailure() {
			return rop.FailFrom[func(A) B, B](rf)
		}
		return solo.Map(pa.Run(in), rf.Result())
	})
}

// All runs every parser over the same input and collects the values in order.
func All[A any](ps ...Parser[A]) Parser[[]A] {
	ps = append([]Parser[A](nil), ps...)
	return New(func(in value.Value) rop.Result[[]A] {
		out := make([]A, 0, len(ps))
		for _, p := range ps {
			r := p.Run(in)
			if r.IsFailure() {
				return rop.FailFrom[A, []A](r)
			}
			out = append(out, r.Result())
		}
		return rop.Success(out)
	})
}

// Map2 parses the same input with pa and pb and combines both values with f.
//
//	type Person struct { Name string; Age float64 }
//
//	person := Map2(
//		Field("name", String),
//		Field("age", Number),
//		func(name string, age float64) Person { return Person{name, age} },
//	)
func Map2[A, B, R any](pa Parser[A], pb Parser[B], f func(A, B) R) Parser[R] {
	return Apply(Map(pa, func(a A) func(B) R {
		return func(b B) R { return f(a, b) }
	}), pb)
}

func Map3[A, B, C, R any](pa Parser[A], pb Parser[B], pc Parser[C],
	f func(A, B, C) R) Parser[R] {
	return Apply(Map2(pa, pb, func(a A, b B) func(C) R {
		return func(c C) R { return f(a, b, c) }
	}), pc)
}

func Map4[A, B, C, D, R any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D],
	f func(A, B, C, D) R) Parser[R] {
	return Apply(Map3(pa, pb, pc, func(a A, b B, c C) func(D) R {
		return func(d D) R { return f(a, b, c, d) }
	}), pd)
}

func Map5[A, B, C, D, E, R any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E],
	f func(A, B, C, D, E) R) Parser[R] {
	return Apply(Map4(pa, pb, pc, pd, func(a A, b B, c C, d D) func(E) R {
		return func(e E) R { return f(a, b, c, d, e) }
	}), pe)
}

func Map6[A, B, C, D, E, F, R any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E],
	pf Parser[F], f func(A, B, C, D, E, F) R) Parser[R] {
	return Apply(Map5(pa, pb, pc, pd, pe, func(a A, b B, c C, d D, e E) func(F) R {
		return func(x F) R { return f(a, b, c, d, e, x) }
	}), pf)
}

func Map7[A, B, C, D, E, F, G, R any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E],
	pf Parser[F], pg Parser[G], f func(A, B, C, D, E, F, G) R) Parser[R] {
	return Apply(Map6(pa, pb, pc, pd, pe, pf, func(a A, b B, c C, d D, e E, x F) func(G) R {
		return func(g G) R { return f(a, b, c, d, e, x, g) }
	}), pg)
}

func Map8[A, B, C, D, E, F, G, H, R any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E],
	pf Parser[F], pg Parser[G], ph Parser[H], f func(A, B, C, D, E, F, G, H) R) Parser[R] {
	return Apply(Map7(pa, pb, pc, pd, pe, pf, pg, func(a A, b B, c C, d D, e E, x F, g G) func(H) R {
		return func(h H) R { return f(a, b, c, d, e, x, g, h) }
	}), ph)
}

// AndThen feeds the value parsed by p to f and runs the parser f returns over
// the original input, not over the parsed value. This lets the shape of the
// rest of a document depend on something already parsed from it, such as a
// "type" discriminator.
func AndThen[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return New(func(in value.Value) rop.Result[B] {
		return solo.AndThen(p.Run(in), func(a A) rop.Result[B] {
			return f(a).Run(in)
		})
	})
}

// Validate fails with the message returned by check when it rejects a parsed
// value.
func Validate[A any](p Parser[A], check func(A) (valid bool, errMsg string)) Parser[A] {
	return New(func(in value.Value) rop.Result[A] {
		return solo.AndThen(p.Run(in), func(a A) rop.Result[A] {
			if valid, errMsg := check(a); !valid {
				return rop.Fail[A](newError(ErrFailed, in, errMsg))
			}
			return rop.Success(a)
		})
	})
}

// OneOf tries each parser in turn and returns the first success. When all of
// them fail the error lists every failure, in order. With no parsers OneOf
// fails with ErrNoAlternatives.
func OneOf[A any](ps ...Parser[A]) Parser[A] {
	ps = append([]Parser[A](nil), ps...)
	return New(func(in value.Value) rop.Result[A] {
		if len(ps) == 0 {
			return rop.Fail[A](newError(ErrNoAlternatives, in,
				fmt.Sprintf("no alternatives to try for %s", in)))
		}
		if len(ps) == 1 {
			return ps[0].Run(in)
		}

		errs := make([]error, 0, len(ps))
		for _, p := range ps {
			r := p.Run(in)
			if r.IsSuccess() {
				return r
			}
			errs = append(errs, r.Err())
		}
		return rop.Fail[A](&AlternativesError{Errs: errs})
	})
}
