// Package monad describes the minimal monad contract (Bind, Unit, Fail) and the
// combinators derived from it.
//
// Key operations:
// - Monad: the contract, parameterised by the implementing type itself
// - LiftWith: lift a plain function A -> B given bind and unit functions
// - Lift: LiftWith for a Monad whose value type does not change
// - Unary/Binary: operator proxies, Binary curries the plain right operand
// - Combine: apply a binary operator to two monadic operands
//
// Every operator a monad exposes is one of these proxies applied to a
// primitive from package num; nothing is written per operator and per type.
//
// Implementations are expected to satisfy the monad laws:
//
//   - left identity:  Unit(x).Bind(f) ~ f(x)
//   - right identity: m.Bind(Unit) ~ m
//   - associativity:  m.Bind(f).Bind(g) ~ m.Bind(func(x) { return f(x).Bind(g) })
//
// and Fail must be absorbing: Fail(e).Bind(f) ~ Fail(e).
package monad
