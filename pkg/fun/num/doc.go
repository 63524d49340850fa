// Package num provides the primitive arithmetic and bitwise operators that the
// monads lift. Each operator reports failure with an error instead of
// panicking, so that a monad's Bind can turn it into its failure value.
//
// Division-like operators reject a zero divisor with ErrDivisionByZero.
// FloorDiv, Mod and DivMod round toward negative infinity, so a remainder
// carries the sign of the divisor. Div keeps Go's own semantics.
package num
