package num

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivisionByZero(t *testing.T) {
	t.Parallel()

	_, err := Div(10, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = Div(1.5, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = FloorDiv(10, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = Mod(10, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = DivMod(10, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestFlooredSemantics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, quo, rem int
	}{
		{a: 7, b: 2, quo: 3, rem: 1},
		{a: -7, b: 2, quo: -4, rem: 1},
		{a: 7, b: -2, quo: -4, rem: -1},
		{a: -7, b: -2, quo: 3, rem: -1},
		{a: 6, b: 3, quo: 2, rem: 0},
	}

	for _, tt := range tests {
		p, err := DivMod(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, Pair[int]{Quo: tt.quo, Rem: tt.rem}, p, "DivMod(%d, %d)", tt.a, tt.b)

		q, _ := FloorDiv(tt.a, tt.b)
		r, _ := Mod(tt.a, tt.b)
		assert.Equal(t, tt.quo, q)
		assert.Equal(t, tt.rem, r)
	}

	q, err := Div(-7, 2)
	require.NoError(t, err)
	assert.Equal(t, -3, q)
}

func TestPow(t *testing.T) {
	t.Parallel()

	got, err := Pow(2, 10)
	require.NoError(t, err)
	assert.Equal(t, 1024, got)

	got, err = Pow(5, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = Pow(2, -1)
	assert.ErrorIs(t, err, ErrNegativeExponent)

	f, err := Pow(4.0, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, f, 1e-12)

	u, err := Pow(uint8(3), uint8(3))
	require.NoError(t, err)
	assert.Equal(t, uint8(27), u)
}

func TestBitwise(t *testing.T) {
	t.Parallel()

	v, _ := Lsh(1, 4)
	assert.Equal(t, 16, v)
	v, _ = Rsh(16, 2)
	assert.Equal(t, 4, v)
	_, err := Lsh(1, -1)
	assert.ErrorIs(t, err, ErrNegativeShift)
	_, err = Rsh(1, -1)
	assert.ErrorIs(t, err, ErrNegativeShift)

	v, _ = And(0b1100, 0b1010)
	assert.Equal(t, 0b1000, v)
	v, _ = Or(0b1100, 0b1010)
	assert.Equal(t, 0b1110, v)
	v, _ = Xor(0b1100, 0b1010)
	assert.Equal(t, 0b0110, v)
	v, _ = Invert(0)
	assert.Equal(t, -1, v)
}

func TestUnary(t *testing.T) {
	t.Parallel()

	v, _ := Neg(5)
	assert.Equal(t, -5, v)
	v, _ = Pos(-5)
	assert.Equal(t, -5, v)
	v, _ = Abs(-5)
	assert.Equal(t, 5, v)
	f, _ := Abs(-2.5)
	assert.Equal(t, 2.5, f)
}

func TestPair_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(3, 1)", Pair[int]{Quo: 3, Rem: 1}.String())
}
