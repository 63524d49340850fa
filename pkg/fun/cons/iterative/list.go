package iterative

import (
	"iter"
	"strings"

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

// IsEmpty reports whether l is the nil list.
func (l *List[T]) IsEmpty() bool {
	return l == nil
}

// Head returns the first element and panics with cons.ErrEmpty on Nil.
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

// Prepend shares l as the tail of the new cell; l itself is untouched.
func (l *List[T]) Prepend(v T) cons.List[T] {
	return Cons(v, l)
}

// Len counts cells in a single pass.
func (l *List[T]) Len() int {
	n := 0
	for c := l; c != nil; c = c.tail {
		n++
	}
	return n
}

// Get returns the element at index, counting from the end when index is
// negative. Out-of-range indices yield an error wrapping cons.ErrIndex.
func (l *List[T]) Get(index int) (T, error) {
	var zero T

	key, err := cons.Resolve(index, l.Len())
	if err != nil {
		return zero, err
	}

	c := l
	for range key {
		if c == nil {
			return zero, cons.IndexError(index)
		}
		c = c.tail
	}
	if c == nil {
		return zero, cons.IndexError(index)
	}
	return c.head, nil
}

// At accepts any integer kind as key.
func (l *List[T]) At(key any) (T, error) {
	index, err := cons.IntKey(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.Get(index)
}

// Contains compares with value.Equal.
func (l *List[T]) Contains(v T) bool {
	for c := l; c != nil; c = c.tail {
		if value.Equal(c.head, v) {
			return true
		}
	}
	return false
}

func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l; c != nil; c = c.tail {
			if !yield(c.head) {
				return
			}
		}
	}
}

// Compare walks both lists side by side. Anything that is not a cons.List of
// the same element type is incomparable.
func (l *List[T]) Compare(other any) value.Equality {
	o, ok := cons.Shaped[T](other)
	if !ok {
		return value.Incomparable
	}

	var c cons.List[T] = l
	for !c.IsEmpty() && !o.IsEmpty() {
		if !value.Equal(c.Head(), o.Head()) {
			return value.NotEq
		}
		c, o = c.Tail(), o.Tail()
	}
	return value.Of(c.IsEmpty() == o.IsEmpty())
}

func (l *List[T]) Equal(other any) bool {
	return l.Compare(other) == value.Eq
}

// Hash folds the element hashes from head to last, closing with
// cons.NilHash. Equal lists of either strategy hash alike.
func (l *List[T]) Hash() uint32 {
	if l == nil {
		return cons.NilHash
	}

	h := cons.HashSeed
	for c := l; c != nil; c = c.tail {
		h = cons.HashStep(h, value.Hash(c.head))
	}
	return cons.HashStep(h, cons.NilHash)
}

// Format writes the nested cons(...) form without recursion.
func (l *List[T]) Format(fn value.Stringify) string {
	if l == nil {
		return cons.NilString
	}

	var sb strings.Builder
	n := 0
	for c := l; c != nil; c = c.tail {
		sb.WriteString("cons(")
		sb.WriteString(fn(c.head))
		sb.WriteString(", ")
		n++
	}
	sb.WriteString(Nil[T]().Format(fn))
	sb.WriteString(strings.Repeat(")", n))
	return sb.String()
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
