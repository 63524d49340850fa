package maybe

import (
	"golang.org/x/exp/constraints"

	"github.com/ib-77/fungo/pkg/fun/num"
)

// Num carries a numeric Maybe through a fluent chain of operators, so that
// Just(10) / 5 / 2 reads as Of(Just(10)).Div(5).Div(2).
type Num[T num.Number] struct {
	m Maybe[T]
}

func Of[T num.Number](m Maybe[T]) Num[T] {
	return Num[T]{m: m}
}

func FromValue[T num.Number](v T) Num[T] {
	return Of(Just(v))
}

func (c Num[T]) Maybe() Maybe[T] {
	return c.m
}

func (c Num[T]) Add(other T) Num[T] { return Num[T]{m: Add(c.m, other)} }
func (c Num[T]) Sub(other T) Num[T] { return Num[T]{m: Sub(c.m, other)} }
func (c Num[T]) Mul(other T) Num[T] { return Num[T]{m: Mul(c.m, other)} }
func (c Num[T]) Div(other T) Num[T] { return Num[T]{m: Div(c.m, other)} }
func (c Num[T]) Pow(other T) Num[T] { return Num[T]{m: Pow(c.m, other)} }
func (c Num[T]) Neg() Num[T]        { return Num[T]{m: Neg(c.m)} }
func (c Num[T]) Pos() Num[T]        { return Num[T]{m: Pos(c.m)} }
func (c Num[T]) Abs() Num[T]        { return Num[T]{m: Abs(c.m)} }

// With applies op against a second Maybe operand.
func (c Num[T]) With(other Maybe[T], op func(a, b T) (T, error)) Num[T] {
	return Num[T]{m: Combine(c.m, other, op)}
}

// Then composes functions that already return a Maybe[T]
func (c Num[T]) Then(fn func(T) Maybe[T]) Num[T] {
	return Num[T]{m: c.m.Bind(func(v T) (Maybe[T], error) { return fn(v), nil })}
}

// OrElse collapses the chain to a plain value.
func (c Num[T]) OrElse(def T) T {
	return c.m.OrElse(def)
}

// Int is Num with the integer-only operators added.
type Int[T constraints.Integer] struct {
	m Maybe[T]
}

func OfInt[T constraints.Integer](m Maybe[T]) Int[T] {
	return Int[T]{m: m}
}

func (c Int[T]) Maybe() Maybe[T] {
	return c.m
}

func (c Int[T]) Num() Num[T] {
	return Of(c.m)
}

func (c Int[T]) Add(other T) Int[T]      { return Int[T]{m: Add(c.m, other)} }
func (c Int[T]) Sub(other T) Int[T]      { return Int[T]{m: Sub(c.m, other)} }
func (c Int[T]) Mul(other T) Int[T]      { return Int[T]{m: Mul(c.m, other)} }
func (c Int[T]) Div(other T) Int[T]      { return Int[T]{m: Div(c.m, other)} }
func (c Int[T]) FloorDiv(other T) Int[T] { return Int[T]{m: FloorDiv(c.m, other)} }
func (c Int[T]) Mod(other T) Int[T]      { return Int[T]{m: Mod(c.m, other)} }
func (c Int[T]) Pow(other T) Int[T]      { return Int[T]{m: Pow(c.m, other)} }
func (c Int[T]) Lsh(other T) Int[T]      { return Int[T]{m: Lsh(c.m, other)} }
func (c Int[T]) Rsh(other T) Int[T]      { return Int[T]{m: Rsh(c.m, other)} }
func (c Int[T]) And(other T) Int[T]      { return Int[T]{m: And(c.m, other)} }
func (c Int[T]) Or(other T) Int[T]       { return Int[T]{m: Or(c.m, other)} }
func (c Int[T]) Xor(other T) Int[T]      { return Int[T]{m: Xor(c.m, other)} }
func (c Int[T]) Neg() Int[T]             { return Int[T]{m: Neg(c.m)} }
func (c Int[T]) Abs() Int[T]             { return Int[T]{m: Abs(c.m)} }
func (c Int[T]) Invert() Int[T]          { return Int[T]{m: Invert(c.m)} }
