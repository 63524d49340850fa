package recursive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fungo/pkg/fun/cons"
	"github.com/ib-77/fungo/pkg/fun/value"
)

func TestCons_BuildsConcreteCells(t *testing.T) {
	t.Parallel()

	l := Cons(3, Cons(2, Cons(1, Nil[int]())))
	assert.Equal(t, "cons(3, cons(2, cons(1, Nil)))", l.String())
	assert.Nil(t, l.tail.tail.tail)
	assert.True(t, l.Equal(Of(3, 2, 1)))
}

func TestGet_ReportsOriginalIndex(t *testing.T) {
	t.Parallel()

	_, err := Of(1, 2).Get(7)
	require.ErrorIs(t, err, cons.ErrIndex)
	assert.EqualError(t, err, "cons: index out of range: 7")

	_, err = Of(1, 2).Get(-3)
	require.ErrorIs(t, err, cons.ErrIndex)
	assert.EqualError(t, err, "cons: index out of range: -3")
}

func TestHash_Fold(t *testing.T) {
	t.Parallel()

	want := cons.HashStep(cons.HashSeed, value.Hash("a"))
	want = cons.HashStep(want, value.Hash("b"))
	want = cons.HashStep(want, cons.NilHash)
	assert.Equal(t, want, Of("a", "b").Hash())
}

func TestAll_StopsEarly(t *testing.T) {
	t.Parallel()

	seen := 0
	for range Of(1, 2, 3, 4).All() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}
