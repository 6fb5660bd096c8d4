package solo

import (
	"context"

	"github.com/ib-77/tweetrop/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	return rop.FlatMap(input, func(r In) rop.Result[Out] {
		return onSuccess(ctx, r)
	})
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	return rop.Map(input, func(r In) Out {
		return onSuccess(ctx, r)
	})
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	return Switch(ctx, input, func(ctx context.Context, in T) rop.Result[T] {
		if err := maybeErr(ctx, in); err != nil {
			return rop.Fail[T](err)
		}
		return input
	})
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}

	return input
}

// DoubleTee runs onSuccess or onError depending on the outcome. Nil handlers are skipped.
func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) rop.Result[T] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(ctx, input.Result())
		}
	} else if onError != nil {
		onError(ctx, input.Err())
	}

	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}
