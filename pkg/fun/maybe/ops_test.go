package maybe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/fungo/pkg/fun/num"
)

func TestBinaryOperators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  Maybe[int]
		want Maybe[int]
	}{
		{"sub", Sub(Just(10), 3), Just(7)},
		{"mul", Mul(Just(10), 3), Just(30)},
		{"floordiv", FloorDiv(Just(-7), 2), Just(-4)},
		{"floordiv by zero", FloorDiv(Just(7), 0), Nothing[int]()},
		{"mod", Mod(Just(-7), 2), Just(1)},
		{"mod by zero", Mod(Just(7), 0), Nothing[int]()},
		{"pow", Pow(Just(2), 8), Just(256)},
		{"pow negative", Pow(Just(2), -1), Nothing[int]()},
		{"lsh", Lsh(Just(1), 3), Just(8)},
		{"lsh negative", Lsh(Just(1), -3), Nothing[int]()},
		{"rsh", Rsh(Just(8), 3), Just(1)},
		{"and", And(Just(6), 3), Just(2)},
		{"or", Or(Just(6), 3), Just(7)},
		{"xor", Xor(Just(6), 3), Just(5)},
		{"nothing", Mul(Nothing[int](), 3), Nothing[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, tt.got.Equal(tt.want), "got %v, want %v", tt.got, tt.want)
		})
	}
}

func TestUnaryOperators(t *testing.T) {
	t.Parallel()

	assert.True(t, Neg(Just(3)).Equal(Just(-3)))
	assert.True(t, Pos(Just(-3)).Equal(Just(-3)))
	assert.True(t, Abs(Just(-3)).Equal(Just(3)))
	assert.True(t, Invert(Just(0)).Equal(Just(-1)))
	assert.True(t, Neg(Nothing[int]()).IsNothing())
	assert.True(t, Abs(Just(-1.5)).Equal(Just(1.5)))
}

func TestDivMod(t *testing.T) {
	t.Parallel()

	out := DivMod(Just(7), 2)
	assert.True(t, out.Equal(Just(num.Pair[int]{Quo: 3, Rem: 1})))
	assert.Equal(t, "Just((3, 1))", out.String())
	assert.True(t, DivMod(Just(7), 0).IsNothing())
	assert.True(t, DivMod(Nothing[int](), 2).IsNothing())
}

func TestFloatDivision(t *testing.T) {
	t.Parallel()

	assert.True(t, Div(Just(1.0), 4).Equal(Just(0.25)))
	assert.True(t, Div(Just(1.0), 0).IsNothing())
}
