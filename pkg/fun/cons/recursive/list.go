package recursive

import (
	"iter"

	"github.com/ib-77/fungo/pkg/fun/cons"
	"github.com/ib-77/fungo/pkg/fun/value"
)

// List is a cons cell. A nil *List is the empty list.
type List[T any] struct {
	head T
	tail *List[T]
}

var _ cons.List[int] = (*List[int])(nil)

// Nil returns the empty list.
func Nil[T any]() *List[T] {
	return nil
}

// Cons returns a new cell with head in front of tail.
func Cons[T any](head T, tail *List[T]) *List[T] {
	return &List[T]{head: head, tail: tail}
}

// Of builds a list holding values in the given order.
func Of[T any](values ...T) *List[T] {
	return FromSlice(values)
}

// FromSlice builds a list holding items in the given order.
func FromSlice[T any](items []T) *List[T] {
	return cons.FromSlice(Cons[T], Nil[T](), items)
}

// FromSeq builds a list from a finite sequence.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	return cons.FromSeq(Cons[T], Nil[T](), seq)
}

func (l *List[T]) IsEmpty() bool {
	return l == nil
}

func (l *List[T]) Head() T {
	if l == nil {
		panic(cons.ErrEmpty)
	}
	return l.head
}

func (l *List[T]) Tail() cons.List[T] {
	if l == nil {
		panic(cons.ErrEmpty)
	}
	return l.tail
}

// Prepend returns a new cell in front of l.
func (l *List[T]) Prepend(v T) cons.List[T] {
	return Cons(v, l)
}

// Len recurses once per cell, so very long lists grow the stack.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.tail.Len() + 1
}

// Get resolves a negative index against Len and then descends. Errors report
// the index as given.
func (l *List[T]) Get(index int) (T, error) {
	key, err := cons.Resolve(index, l.Len())
	if err != nil {
		var zero T
		return zero, err
	}
	return l.nth(key, index)
}

func (l *List[T]) nth(key, index int) (T, error) {
	if l == nil {
		var zero T
		return zero, cons.IndexError(index)
	}
	if key == 0 {
		return l.head, nil
	}
	return l.tail.nth(key-1, index)
}

func (l *List[T]) At(key any) (T, error) {
	index, err := cons.IntKey(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.Get(index)
}

// Contains stops at the first element equal to v.
func (l *List[T]) Contains(v T) bool {
	if l == nil {
		return false
	}
	return value.Equal(l.head, v) || l.tail.Contains(v)
}

// All stops descending as soon as yield returns false.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.each(yield)
	}
}

func (l *List[T]) each(yield func(T) bool) bool {
	if l == nil {
		return true
	}
	return yield(l.head) && l.tail.each(yield)
}

// Compare matches heads and recurses into the tails. Anything that is not a
// cons.List of the same element type is incomparable.
func (l *List[T]) Compare(other any) value.Equality {
	o, ok := cons.Shaped[T](other)
	if !ok {
		return value.Incomparable
	}
	if l == nil || o.IsEmpty() {
		return value.Of(l.IsEmpty() == o.IsEmpty())
	}
	if !value.Equal(l.head, o.Head()) {
		return value.NotEq
	}
	return l.tail.Compare(o.Tail())
}

func (l *List[T]) Equal(other any) bool {
	return l.Compare(other) == value.Eq
}

// Hash carries the fold accumulator down the tail, yielding the same code
// as the iterative strategy.
func (l *List[T]) Hash() uint32 {
	if l == nil {
		return cons.NilHash
	}
	return l.hashFrom(cons.HashSeed)
}

func (l *List[T]) hashFrom(acc uint32) uint32 {
	if l == nil {
		return cons.HashStep(acc, cons.NilHash)
	}
	return l.tail.hashFrom(cons.HashStep(acc, value.Hash(l.head)))
}

// Format renders each cell around the rendering of its tail.
func (l *List[T]) Format(fn value.Stringify) string {
	if l == nil {
		return cons.NilString
	}
	return "cons(" + fn(l.head) + ", " + l.tail.Format(fn) + ")"
}

func (l *List[T]) String() string {
	return l.Format(value.Str)
}

func (l *List[T]) GoString() string {
	return l.Format(value.Repr)
}

func (l *List[T]) MarshalText() ([]byte, error) {
	return []byte(l.Format(value.Text)), nil
}
