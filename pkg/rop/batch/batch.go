package batch

import (
	"context"
	"errors"
	"runtime"

	"github.com/ib-77/ropparse/pkg/parser"
	"github.com/ib-77/ropparse/pkg/rop"
	"github.com/ib-77/ropparse/pkg/rop/core"
	"github.com/ib-77/ropparse/pkg/value"
)

var ErrNotProcessed = errors.New("batch: input not processed")

// Run parses every value read from inputs on the given number of lines.
// Results arrive in completion order; the channel closes once inputs is
// drained or ctx is done.
func Run[A any](ctx context.Context, p parser.Parser[A], inputs <-chan value.Value,
	lines int) <-chan rop.Result[A] {

	return core.Turnout(ctx, inputs,
		func(_ context.Context, in value.Value) rop.Result[A] {
			return p.Run(in)
		}, nil, lines)
}

type indexed[T any] struct {
	i int
	v T
}

// RunAll parses inputs and returns one result per input, in input order. The
// number of lines comes from core.WithWorkerOptions and defaults to the
// number of CPUs. Inputs left unparsed because ctx ended fail with
// ErrNotProcessed joined with the context error.
func RunAll[A any](ctx context.Context, p parser.Parser[A], inputs []value.Value) []rop.Result[A] {
	tagged := make([]indexed[value.Value], len(inputs))
	for i, in := range inputs {
		tagged[i] = indexed[value.Value]{i: i, v: in}
	}

	lines := core.GetWorkerMaxCount(ctx, runtime.NumCPU())
	out := core.Turnout(ctx, core.ToChanMany(ctx, tagged),
		func(_ context.Context, in indexed[value.Value]) indexed[rop.Result[A]] {
			return indexed[rop.Result[A]]{i: in.i, v: p.Run(in.v)}
		}, nil, lines)

	results := make([]rop.Result[A], len(inputs))
	done := make([]bool, len(inputs))
	for r := range out {
		results[r.i] = r.v
		done[r.i] = true
	}

	for i := range results {
		if !done[i] {
			results[i] = rop.Fail[A](errors.Join(ErrNotProcessed, ctx.Err()))
		}
	}
	return results
}
