package result

import (
	"errors"

	"github.com/ib-77/fungo/pkg/fun/cons"
	"github.com/ib-77/fungo/pkg/fun/monad"
)

func Switch[In, Out any](input Result[In], onSuccess func(r In) Result[Out]) Result[Out] {
	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return failFrom[In, Out](input)
}

func Map[In, Out any](input Result[In], onSuccess func(r In) Out) Result[Out] {
	return Lift(func(r In) (Out, error) {
		return onSuccess(r), nil
	})(input)
}

func Try[In, Out any](input Result[In], onTryExecute func(r In) (Out, error)) Result[Out] {
	return Lift(onTryExecute)(input)
}

// Lift turns fn into a function from Result[In] to Result[Out]; an error from
// fn becomes a failure.
func Lift[In, Out any](fn func(In) (Out, error)) func(Result[In]) Result[Out] {
	return monad.LiftWith(bind[In, Out], Success[Out], fn)
}

func bind[In, Out any](input Result[In], fn func(In) (Result[Out], error)) Result[Out] {
	return Switch(input, func(r In) Result[Out] {
		out, err := fn(r)
		if err != nil {
			return Fail[Out](err)
		}
		return out
	})
}

func Tee[T any](input Result[T], onSuccess func(r Result[T])) Result[T] {
	if input.IsSuccess() {
		onSuccess(input)
	}
	return input
}

func Finally[In, Out any](input WithError[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}

// Sequence returns a successful list of every value, in order and built on
// zero, or a failure joining the errors of all failed elements.
func Sequence[T any](l cons.List[Result[T]], zero cons.List[T]) Result[cons.List[T]] {
	var errs []error
	values := make([]T, 0, l.Len())
	for r := range l.All() {
		if r.IsFailure() {
			errs = append(errs, GetErrors(r.Err())...)
			continue
		}
		values = append(values, r.Result())
	}

	if len(errs) > 0 {
		return Fail[cons.List[T]](errors.Join(errs...))
	}
	return Success(cons.FromSlice(func(v T, tail cons.List[T]) cons.List[T] {
		return tail.Prepend(v)
	}, zero, values))
}
