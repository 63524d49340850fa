package maybe

import (
	"github.com/ib-77/fungo/pkg/fun/cons"
	"github.com/ib-77/fungo/pkg/fun/monad"
	"github.com/ib-77/fungo/pkg/fun/value"
)

// NothingHash is the hash code of Nothing.
const NothingHash uint32 = 4148918381

type Maybe[T any] struct {
	value T
	ok    bool
}

var _ monad.Monad[int, Maybe[int]] = Maybe[int]{}

// shape is satisfied by every instantiation of Maybe.
type shape interface {
	IsNothing() bool
	unwrap() any
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// Nothing returns the absent value. It is the zero Maybe[T].
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

func (m Maybe[T]) IsJust() bool {
	return m.ok
}

func (m Maybe[T]) IsNothing() bool {
	return !m.ok
}

// Get returns the held value and whether there is one.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

func (m Maybe[T]) OrElse(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

// Bind passes the held value to fn. Nothing is returned unchanged without
// calling fn, and an error from fn turns into Nothing.
func (m Maybe[T]) Bind(fn func(T) (Maybe[T], error)) Maybe[T] {
	return Bind(m, fn)
}

func (m Maybe[T]) Unit(v T) Maybe[T] {
	return Just(v)
}

// Fail discards the reason; Nothing carries no payload.
func (m Maybe[T]) Fail(error) Maybe[T] {
	return Nothing[T]()
}

func (m Maybe[T]) unwrap() any {
	return m.value
}

// Compare treats every Nothing as equal, whatever its type parameter. Values
// that are not a Maybe are incomparable.
func (m Maybe[T]) Compare(other any) value.Equality {
	o, ok := other.(shape)
	if !ok {
		return value.Incomparable
	}
	if m.IsNothing() || o.IsNothing() {
		return value.Of(m.IsNothing() == o.IsNothing())
	}
	return value.Of(value.Equal(m.value, o.unwrap()))
}

func (m Maybe[T]) Equal(other any) bool {
	return m.Compare(other) == value.Eq
}

// Hash of Just(x) is the hash of x.
func (m Maybe[T]) Hash() uint32 {
	if !m.ok {
		return NothingHash
	}
	return value.Hash(m.value)
}

func (m Maybe[T]) Format(fn value.Stringify) string {
	if !m.ok {
		return "Nothing"
	}
	return "Just(" + fn(m.value) + ")"
}

func (m Maybe[T]) String() string {
	return m.Format(value.Str)
}

func (m Maybe[T]) GoString() string {
	return m.Format(value.Repr)
}

func (m Maybe[T]) MarshalText() ([]byte, error) {
	return []byte(m.Format(value.Text)), nil
}

// Bind is the type-changing form of Maybe.Bind.
func Bind[A, B any](m Maybe[A], fn func(A) (Maybe[B], error)) Maybe[B] {
	if !m.ok {
		return Nothing[B]()
	}
	out, err := fn(m.value)
	if err != nil {
		return Nothing[B]()
	}
	return out
}

// Lift turns fn into a function from Maybe[A] to Maybe[B].
func Lift[A, B any](fn func(A) (B, error)) func(Maybe[A]) Maybe[B] {
	return monad.LiftWith(Bind[A, B], Just[B], fn)
}

// Map applies a function that cannot fail to the held value.
func Map[A, B any](m Maybe[A], fn func(A) B) Maybe[B] {
	return Lift(func(a A) (B, error) {
		return fn(a), nil
	})(m)
}

// Sequence returns Just of every held value, in order, as a list built on
// zero, or Nothing if any element is Nothing.
func Sequence[T any](l cons.List[Maybe[T]], zero cons.List[T]) Maybe[cons.List[T]] {
	values := make([]T, 0, l.Len())
	for m := range l.All() {
		v, ok := m.Get()
		if !ok {
			return Nothing[cons.List[T]]()
		}
		values = append(values, v)
	}
	return Just(cons.FromSlice(prepend[T], zero, values))
}

func prepend[T any](v T, l cons.List[T]) cons.List[T] {
	return l.Prepend(v)
}
