package cons

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/ib-77/fungo/pkg/fun/value"
)

var (
	// ErrIndex is returned when an index falls outside [0, Len()).
	ErrIndex = errors.New("cons: index out of range")
	// ErrType is returned when a key used for indexing is not an integer.
	ErrType = errors.New("cons: index must be an integer")
	// ErrEmpty is the panic value for Head or Tail of an empty list.
	ErrEmpty = errors.New("cons: head or tail of Nil")
)

const (
	// NilHash is the hash code of every empty list.
	NilHash uint32 = 109178833
	// HashSeed starts the hash fold of a non-empty list.
	HashSeed uint32 = 1
	// HashMultiplier weights each step of the fold.
	HashMultiplier uint32 = 31
	// NilString renders the empty list.
	NilString = "Nil"
)

// List is an immutable cons list. The empty list is Nil; every other list is a
// cell holding Head and Tail.
type List[T any] interface {
	fmt.Stringer
	fmt.GoStringer
	value.Comparer
	value.Hasher

	// IsEmpty reports whether the list is Nil.
	IsEmpty() bool
	// Head returns the first element. It panics with ErrEmpty on Nil.
	Head() T
	// Tail returns the list after the first element. It panics with ErrEmpty
	// on Nil.
	Tail() List[T]
	// Prepend returns a new list with v in front of the receiver.
	Prepend(v T) List[T]

	Len() int
	// Get returns the element at index. Negative indices count from the end.
	Get(index int) (T, error)
	// At is Get for keys of any type; non-integer keys yield ErrType.
	At(key any) (T, error)
	Contains(v T) bool
	// All yields the elements from head to last. Every call starts afresh.
	All() iter.Seq[T]

	// Equal collapses Compare to a boolean.
	Equal(other any) bool
	// Format renders the list as nested cons(...) calls using fn for every
	// element.
	Format(fn value.Stringify) string
}

// HashStep advances the hash fold by one element hash.
func HashStep(acc, h uint32) uint32 {
	return acc*HashMultiplier + h
}

// Resolve turns a negative index into a position counted from the end, as
// length - |index|, and fails when that is still negative. Indices past the
// end are left for the caller to reject while walking.
func Resolve(index, length int) (int, error) {
	if index >= 0 {
		return index, nil
	}
	if resolved := length - -index; resolved >= 0 {
		return resolved, nil
	}
	return 0, IndexError(index)
}

// IndexError wraps ErrIndex for the given key.
func IndexError(index int) error {
	return fmt.Errorf("%w: %d", ErrIndex, index)
}

// IntKey converts any integer kind to int.
func IntKey(key any) (int, error) {
	switch k := key.(type) {
	case int:
		return k, nil
	case int8:
		return int(k), nil
	case int16:
		return int(k), nil
	case int32:
		return int(k), nil
	case int64:
		return int(k), nil
	case uint:
		return unsignedKey(uint64(k))
	case uint8:
		return int(k), nil
	case uint16:
		return int(k), nil
	case uint32:
		return unsignedKey(uint64(k))
	case uint64:
		return unsignedKey(k)
	case uintptr:
		return unsignedKey(uint64(k))
	default:
		return 0, fmt.Errorf("%w, got %T", ErrType, key)
	}
}

// unsignedKey rejects keys that would wrap negative as an int. No list is
// that long, so they are out of range rather than counted from the end.
func unsignedKey(k uint64) (int, error) {
	if k > math.MaxInt {
		return 0, fmt.Errorf("%w: %d", ErrIndex, k)
	}
	return int(k), nil
}

// Shaped reports whether other has list structure for element type T, i.e.
// whether a List[T] can compare itself against it.
func Shaped[T any](other any) (List[T], bool) {
	l, ok := other.(List[T])
	return l, ok
}
