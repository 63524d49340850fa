package maybe

import (
	"golang.org/x/exp/constraints"

	"github.com/ib-77/fungo/pkg/fun/monad"
	"github.com/ib-77/fungo/pkg/fun/num"
)

func Add[T num.Number](m Maybe[T], other T) Maybe[T] {
	return monad.Binary[T, Maybe[T]](num.Add[T])(m, other)
}

func Sub[T num.Number](m Maybe[T], other T) Maybe[T] {
	return monad.Binary[T, Maybe[T]](num.Sub[T])(m, other)
}

func Mul[T num.Number](m Maybe[T], other T) Maybe[T] {
	return monad.Binary[T, Maybe[T]](num.Mul[T])(m, other)
}

// Div is Nothing when other is zero.
func Div[T num.Number](m Maybe[T], other T) Maybe[T] {
	return monad.Binary[T, Maybe[T]](num.Div[T])(m, other)
}

func FloorDiv[T constraints.Integer](m Maybe[T], other T) Maybe[T] {
	return monad.Binary[T, Maybe[T]](num.FloorDiv[T])(m, other)
}

func Mod[T constraints.Integer](m Maybe[T], other T) Maybe[T] {
	return monad.Binary[T, Maybe[T]](num.Mod[T])(m, other)
}

func DivMod[T constraints.Integer](m Maybe[T], other T) Maybe[num.Pair[T]] {
	return Lift(func(a T) (num.Pair[T], error) {
		return num.DivMod(a, other)
	})(m)
}

func Pow[T num.Number](m Maybe[T], other T) Maybe[T] {
	return monad.Binary[T, Maybe[T]](num.Pow[T])(m, other)
}

func Lsh[T constraints.Integer](m Maybe[T], other T) Maybe[T] {
	return monad.Binary[T, Maybe[T]](num.Lsh[T])(m, other)
}

func Rsh[T constraints.Integer](m Maybe[T], other T) Maybe[T] {
	return monad.Binary[T, Maybe[T]](num.Rsh[T])(m, other)
}

func And[T constraints.Integer](m Maybe[T], other T) Maybe[T] {
	return monad.Binary[T, Maybe[T]](num.And[T])(m, other)
}

func Or[T constraints.Integer](m Maybe[T], other T) Maybe[T] {
	return monad.Binary[T, Maybe[T]](num.Or[T])(m, other)
}

func Xor[T constraints.Integer](m Maybe[T], other T) Maybe[T] {
	return monad.Binary[T, Maybe[T]](num.Xor[T])(m, other)
}

func Neg[T num.Number](m Maybe[T]) Maybe[T] {
	return monad.Unary[T, Maybe[T]](num.Neg[T])(m)
}

func Pos[T num.Number](m Maybe[T]) Maybe[T] {
	return monad.Unary[T, Maybe[T]](num.Pos[T])(m)
}

func Abs[T num.Number](m Maybe[T]) Maybe[T] {
	return monad.Unary[T, Maybe[T]](num.Abs[T])(m)
}

func Invert[T constraints.Integer](m Maybe[T]) Maybe[T] {
	return monad.Unary[T, Maybe[T]](num.Invert[T])(m)
}

// Combine applies op to the values of m and n; Nothing on either side wins.
func Combine[T any](m, n Maybe[T], op func(a, b T) (T, error)) Maybe[T] {
	return monad.Combine[T, Maybe[T]](op)(m, n)
}
