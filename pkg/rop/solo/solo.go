package solo

import (
	"github.com/ib-77/ropparse/pkg/rop"
	"github.com/ib-77/ropparse/pkg/rop/option"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

// AndThen feeds a successful value into onSuccess; failures pass through
// without calling it.
func AndThen[In any, Out any](input rop.Result[In],
	onSuccess func(r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](input rop.Result[In],
	onSuccess func(r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

// MapError rewrites the error of a failed result. The result keeps its id.
func MapError[T any](input rop.Result[T], onError func(err error) error) rop.Result[T] {
	if input.IsFailure() {
		return rop.FailWith[T, T](input, onError(input.Err()))
	}
	return input
}

func Try[In any, Out any](input rop.Result[In],
	onTryExecute func(r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(input.Result())
		if err != nil {
			return rop.Fail[Out](err)
		}
		return rop.Success(out)
	}
	return rop.FailFrom[In, Out](input)
}

// ToOption drops the error: failures become None.
func ToOption[T any](input rop.Result[T]) option.Option[T] {
	if input.IsSuccess() {
		return option.Some(input.Result())
	}
	return option.None[T]()
}

func DoubleTee[T any](input rop.Result[T],
	onSuccess func(r T),
	onError func(err error)) rop.Result[T] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(input.Result())
		}
	} else if onError != nil {
		onError(input.Err())
	}

	return input
}

func Finally[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}
