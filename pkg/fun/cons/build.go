package cons

import (
	"iter"
	"slices"
)

// FromSlice builds a list whose iteration yields items in their original
// order. unit and zero are the cell constructor and the empty list of the
// chosen implementation. The items are folded in reverse because each unit
// call places its element at the front.
func FromSlice[T any, L any](unit func(T, L) L, zero L, items []T) L {
	l := zero
	for _, v := range slices.Backward(items) {
		l = unit(v, l)
	}
	return l
}

// FromSeq is FromSlice for a finite sequence.
func FromSeq[T any, L any](unit func(T, L) L, zero L, seq iter.Seq[T]) L {
	return FromSlice(unit, zero, slices.Collect(seq))
}

// Collect returns the elements of l in order.
func Collect[T any](l List[T]) []T {
	return slices.Collect(l.All())
}

// Reduce folds l from head to last.
func Reduce[T, A any](l List[T], initial A, fn func(acc A, v T) A) A {
	acc := initial
	for v := range l.All() {
		acc = fn(acc, v)
	}
	return acc
}

// Map lazily applies fn to every element of l.
func Map[T, U any](l List[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range l.All() {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter lazily yields the elements of l that satisfy keep.
func Filter[T any](l List[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range l.All() {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}
