package rop

import "errors"

// ErrNilFailure is stored by Fail when it is given a nil error.
var ErrNilFailure = errors.New("rop: failure without error")

type Result[T any] struct {
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
	}
}

func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrNilFailure
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
	}
}

// FailFrom re-types a failed result, keeping its error untouched.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
	}
}

// FlatMap calls onSuccess with the payload of a successful result and returns
// whatever it produces. A failure is passed through and onSuccess is not called.
func FlatMap[In, Out any](input Result[In], onSuccess func(r In) Result[Out]) Result[Out] {
	if !input.isSuccess {
		return FailFrom[In, Out](input)
	}
	return onSuccess(input.result)
}

// Map transforms the payload of a successful result.
func Map[In, Out any](input Result[In], onSuccess func(r In) Out) Result[Out] {
	return FlatMap(input, func(r In) Result[Out] {
		return Success(onSuccess(r))
	})
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Get unpacks the result into the usual (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.result, r.err
}
