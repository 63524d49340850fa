// Package result provides Result[T], a success-or-failure monad that keeps the
// error of a failed step. Each Result carries a trace id and its creation
// time, so a value can be followed through a chain of steps.
//
// Highlights:
// - Success/Fail: construct a Result[T]
// - Bind/Unit/Fail: the monad contract, usable with package monad proxies
// - Switch: move from Result[In] to Result[Out]
// - Map/Try: transform a successful value, Try converts a returned error
// - Tee: side effect on success only
// - Finally: reduce to a concrete value via success and error handlers
// - Sequence: gather a cons list of results, joining every failure
package result
