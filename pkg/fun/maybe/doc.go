// Package maybe provides Maybe[T], the optional-value monad with the variants
// Just(value) and Nothing.
//
// Highlights:
// - Just/Nothing: construct a Maybe[T]; Nothing is the zero value
// - Bind: sequence a computation; an error from it yields Nothing
// - Lift/Map/Bind (package level): change the value type
// - Add/Sub/Mul/Div/FloorDiv/Mod/DivMod/Pow/Lsh/Rsh/And/Or/Xor: binary
//   operators taking a plain right operand
// - Neg/Pos/Abs/Invert: unary operators
// - Combine: a binary operator over two Maybe operands
// - Num/Int: fluent chains over the operators, e.g.
//   Of(Just(10)).Div(5).Div(2).Maybe()
// - Sequence: turn a cons list of Maybe values into a Maybe list
//
// All operators are generated with the monad package proxies, so arithmetic
// short-circuits on Nothing and a failing primitive, such as a division by
// zero, produces Nothing instead of an error.
package maybe
