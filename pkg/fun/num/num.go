package num

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

var (
	ErrDivisionByZero   = errors.New("num: division by zero")
	ErrNegativeShift    = errors.New("num: negative shift count")
	ErrNegativeExponent = errors.New("num: negative exponent for integer power")
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Pair is the result of DivMod.
type Pair[T any] struct {
	Quo T
	Rem T
}

func (p Pair[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Quo, p.Rem)
}

func Add[T Number](a, b T) (T, error) {
	return a + b, nil
}

func Sub[T Number](a, b T) (T, error) {
	return a - b, nil
}

func Mul[T Number](a, b T) (T, error) {
	return a * b, nil
}

// Div divides with Go semantics: integer division truncates.
func Div[T Number](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv[T constraints.Integer](a, b T) (T, error) {
	p, err := DivMod(a, b)
	return p.Quo, err
}

// Mod returns the remainder of FloorDiv.
func Mod[T constraints.Integer](a, b T) (T, error) {
	p, err := DivMod(a, b)
	return p.Rem, err
}

// DivMod returns the floored quotient and remainder.
func DivMod[T constraints.Integer](a, b T) (Pair[T], error) {
	if b == 0 {
		return Pair[T]{}, ErrDivisionByZero
	}
	q, r := a/b, a%b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return Pair[T]{Quo: q, Rem: r}, nil
}

// Pow raises a to b. Integer types require a non-negative exponent.
func Pow[T Number](a, b T) (T, error) {
	if isFloat[T]() {
		return T(math.Pow(float64(a), float64(b))), nil
	}
	if b < 0 {
		return 0, ErrNegativeExponent
	}

	result := T(1)
	for n := uint64(b); n > 0; n >>= 1 {
		if n&1 == 1 {
			result *= a
		}
		a *= a
	}
	return result, nil
}

func Lsh[T constraints.Integer](a, b T) (T, error) {
	if b < 0 {
		return 0, ErrNegativeShift
	}
	return a << uint64(b), nil
}

func Rsh[T constraints.Integer](a, b T) (T, error) {
	if b < 0 {
		return 0, ErrNegativeShift
	}
	return a >> uint64(b), nil
}

func And[T constraints.Integer](a, b T) (T, error) {
	return a & b, nil
}

func Or[T constraints.Integer](a, b T) (T, error) {
	return a | b, nil
}

func Xor[T constraints.Integer](a, b T) (T, error) {
	return a ^ b, nil
}

func Neg[T Number](a T) (T, error) {
	return -a, nil
}

func Pos[T Number](a T) (T, error) {
	return a, nil
}

func Abs[T Number](a T) (T, error) {
	if a < 0 {
		return -a, nil
	}
	return a, nil
}

func Invert[T constraints.Integer](a T) (T, error) {
	return ^a, nil
}

func isFloat[T Number]() bool {
	one, two := T(1), T(2)
	return one/two != 0
}
