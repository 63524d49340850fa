package result

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/fungo/pkg/fun/monad"
	"github.com/ib-77/fungo/pkg/fun/value"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

var _ monad.Monad[int, Result[int]] = Result[int]{}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// failFrom keeps the trace id of a failed input while changing its type.
func failFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
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

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Bind runs fn on a successful value. A failure is returned as is.
func (r Result[T]) Bind(fn func(T) (Result[T], error)) Result[T] {
	return Switch(r, func(v T) Result[T] {
		out, err := fn(v)
		if err != nil {
			return Fail[T](err)
		}
		return out
	})
}

func (r Result[T]) Unit(v T) Result[T] {
	return Success(v)
}

func (r Result[T]) Fail(reason error) Result[T] {
	return Fail[T](reason)
}

// Compare ignores ids and timestamps: two successes are equal when their
// values are, two failures when either error matches the other under
// errors.Is.
func (r Result[T]) Compare(other any) value.Equality {
	o, ok := other.(Result[T])
	if !ok {
		return value.Incomparable
	}
	if r.isSuccess != o.isSuccess {
		return value.NotEq
	}
	if r.isSuccess {
		return value.Of(value.Equal(r.result, o.result))
	}
	return value.Of(errors.Is(r.err, o.err) || errors.Is(o.err, r.err))
}

func (r Result[T]) Equal(other any) bool {
	return r.Compare(other) == value.Eq
}

func (r Result[T]) Hash() uint32 {
	if r.isSuccess {
		return value.Hash(r.result)
	}
	// errors.Is equality gives no content to hash
	return 0
}

func (r Result[T]) Format(fn value.Stringify) string {
	if r.isSuccess {
		return "Success(" + fn(r.result) + ")"
	}
	return "Failure(" + fn(r.err) + ")"
}

func (r Result[T]) String() string {
	return r.Format(value.Str)
}

func (r Result[T]) GoString() string {
	return r.Format(value.Repr)
}
