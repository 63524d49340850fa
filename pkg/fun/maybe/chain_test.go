package maybe

import (
	"testing"

	"github.com/ib-77/fungo/pkg/fun/num"
)

func TestNum_DivChain(t *testing.T) {
	t.Parallel()

	out := Of(Just(10)).Div(5).Div(2).Maybe()
	if !out.Equal(Just(1)) {
		t.Fatalf("expected Just(1), got %v", out)
	}
}

func TestNum_DivByZeroShortCircuits(t *testing.T) {
	t.Parallel()

	out := Of(Just(10)).Div(2).Div(0).Div(2).Maybe()
	if !out.IsNothing() {
		t.Fatalf("expected Nothing, got %v", out)
	}

	called := false
	out = Of(Just(10)).Div(0).Then(func(v int) Maybe[int] {
		called = true
		return Just(v)
	}).Maybe()
	if !out.IsNothing() || called {
		t.Fatalf("expected Nothing without calling Then, got %v (called=%v)", out, called)
	}
}

func TestNum_NothingPropagates(t *testing.T) {
	t.Parallel()

	out := Of(Nothing[float64]()).Add(1).Mul(2).Neg().Maybe()
	if !out.IsNothing() {
		t.Fatalf("expected Nothing, got %v", out)
	}
	if got := Of(Nothing[float64]()).OrElse(-1); got != -1 {
		t.Fatalf("expected fallback -1, got %v", got)
	}
}

func TestNum_Arithmetic(t *testing.T) {
	t.Parallel()

	out := FromValue(3).Add(4).Mul(2).Sub(4).Pow(2).Neg().Abs().Pos().Maybe()
	if !out.Equal(Just(100)) {
		t.Fatalf("expected Just(100), got %v", out)
	}

	half := FromValue(1.0).Div(4).Maybe()
	if !half.Equal(Just(0.25)) {
		t.Fatalf("expected Just(0.25), got %v", half)
	}
}

func TestNum_With(t *testing.T) {
	t.Parallel()

	out := FromValue(10).With(Just(3), num.Sub[int]).Maybe()
	if !out.Equal(Just(7)) {
		t.Fatalf("expected Just(7), got %v", out)
	}
	out = FromValue(10).With(Nothing[int](), num.Sub[int]).Maybe()
	if !out.IsNothing() {
		t.Fatalf("expected Nothing, got %v", out)
	}
}

func TestInt_Operators(t *testing.T) {
	t.Parallel()

	out := OfInt(Just(-7)).FloorDiv(2).Maybe()
	if !out.Equal(Just(-4)) {
		t.Fatalf("expected Just(-4), got %v", out)
	}

	out = OfInt(Just(-7)).Mod(2).Maybe()
	if !out.Equal(Just(1)) {
		t.Fatalf("expected Just(1), got %v", out)
	}

	out = OfInt(Just(1)).Lsh(4).Or(1).And(0b11).Xor(0b10).Maybe()
	if !out.Equal(Just(3)) {
		t.Fatalf("expected Just(3), got %v", out)
	}

	out = OfInt(Just(0)).Invert().Neg().Rsh(0).Maybe()
	if !out.Equal(Just(1)) {
		t.Fatalf("expected Just(1), got %v", out)
	}

	out = OfInt(Just(1)).Lsh(-1).Add(1).Maybe()
	if !out.IsNothing() {
		t.Fatalf("expected Nothing for a negative shift, got %v", out)
	}

	back := OfInt(Just(9)).Mod(5).Num().Div(2).Maybe()
	if !back.Equal(Just(2)) {
		t.Fatalf("expected Just(2), got %v", back)
	}
}
