package monad

// Monad is implemented by a monad type M holding values of type T. M is the
// implementing type itself so that the methods can return it.
type Monad[T, M any] interface {
	// Bind runs fn on the held value. A non-nil error from fn is converted
	// into Fail(err); errors raised anywhere else are not intercepted.
	Bind(fn func(T) (M, error)) M
	// Unit wraps a plain value.
	Unit(v T) M
	// Fail returns the failure value of the monad.
	Fail(reason error) M
}

// LiftWith turns fn into a function over monadic values: it binds the input
// with bind, applies fn to the unwrapped value and wraps the result with unit.
// An error from fn is handed back to bind.
func LiftWith[A, B, MA, MB any](
	bind func(MA, func(A) (MB, error)) MB,
	unit func(B) MB,
	fn func(A) (B, error)) func(MA) MB {

	return func(m MA) MB {
		return bind(m, func(a A) (MB, error) {
			b, err := fn(a)
			if err != nil {
				var zero MB
				return zero, err
			}
			return unit(b), nil
		})
	}
}

// Lift is LiftWith for a Monad, using its own Bind and Unit.
func Lift[T any, M Monad[T, M]](fn func(T) (T, error)) func(M) M {
	return func(m M) M {
		return LiftWith(bindOf[T, M], m.Unit, fn)(m)
	}
}

// Unary lifts a unary operator.
func Unary[T any, M Monad[T, M]](op func(T) (T, error)) func(M) M {
	return Lift[T, M](op)
}

// Binary lifts a binary operator whose right operand is a plain value.
func Binary[T any, M Monad[T, M]](op func(a, b T) (T, error)) func(m M, other T) M {
	return func(m M, other T) M {
		return Lift[T, M](func(x T) (T, error) {
			return op(x, other)
		})(m)
	}
}

// Combine lifts a binary operator over two monadic operands. The result fails
// if either operand does.
func Combine[T any, M Monad[T, M]](op func(a, b T) (T, error)) func(m, n M) M {
	return func(m, n M) M {
		return m.Bind(func(x T) (M, error) {
			return Lift[T, M](func(y T) (T, error) {
				return op(x, y)
			})(n), nil
		})
	}
}

func bindOf[T any, M Monad[T, M]](m M, fn func(T) (M, error)) M {
	return m.Bind(fn)
}
