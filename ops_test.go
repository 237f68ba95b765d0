package seqvec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myceliumweb.org/seqvec"
)

func TestModByZeroYieldsZero(t *testing.T) {
	t.Parallel()
	a := seqvec.Of[int64](7, 8, 9)
	d := seqvec.Of[int64](2, 0, 4)
	got := seqvec.Eval(a.Mod(d))
	require.True(t, got.ElemsEqual(seqvec.Of[int64](1, 0, 1)))

	// same policy on the mutating path
	a.ModEq(d)
	require.True(t, a.ElemsEqual(seqvec.Of[int64](1, 0, 1)))

	u := seqvec.Of[uint32](7, 8)
	u.ModEq(seqvec.Of[uint32](3, 0))
	require.True(t, u.ElemsEqual(seqvec.Of[uint32](1, 0)))
}

func TestShiftOpsSymmetric(t *testing.T) {
	t.Parallel()
	a := seqvec.Of[int64](1, 2, 3)
	left := seqvec.Eval(a.Shl(seqvec.Const[int64](4)))
	require.True(t, left.ElemsEqual(seqvec.Of[int64](16, 32, 48)))
	back := seqvec.Eval(left.Shr(seqvec.Const[int64](4)))
	require.True(t, back.ElemsEqual(a))
}

func TestBitwise(t *testing.T) {
	t.Parallel()
	a := seqvec.Of[uint8](0b1100, 0b1010)
	b := seqvec.Of[uint8](0b1010, 0b0110)
	assert.True(t, seqvec.Eval(a.And(b)).ElemsEqual(seqvec.Of[uint8](0b1000, 0b0010)))
	assert.True(t, seqvec.Eval(a.Or(b)).ElemsEqual(seqvec.Of[uint8](0b1110, 0b1110)))
	assert.True(t, seqvec.Eval(a.Xor(b)).ElemsEqual(seqvec.Of[uint8](0b0110, 0b1100)))
}

func TestNarrowWidthSemantics(t *testing.T) {
	t.Parallel()
	// shifts and complements behave at the element's own width
	c := seqvec.Of[int8](1)
	c.ShlEq(seqvec.Of[int8](7))
	require.True(t, c.ElemsEqual(seqvec.Of[int8](-128)))

	u := seqvec.Of[uint8](0x80)
	u.ShrEq(seqvec.Of[uint8](7))
	require.True(t, u.ElemsEqual(seqvec.Of[uint8](1)))

	n := seqvec.Of[uint8](0x0f).Not()
	require.True(t, n.ElemsEqual(seqvec.Of[uint8](0xf0)))
}

func TestIntOnlyOpsPanicOnFloat(t *testing.T) {
	t.Parallel()
	a := seqvec.Of(1.5, 2.5)
	b := seqvec.Of(1.0, 2.0)
	assert.Panics(t, func() { a.Mod(b) })
	assert.Panics(t, func() { a.And(b) })
	assert.Panics(t, func() { a.ShlEq(b) })
	assert.Panics(t, func() { a.Not() })
}

func TestDivByZeroPassesThrough(t *testing.T) {
	t.Parallel()
	f := seqvec.Eval(seqvec.Of(1.0).Div(seqvec.Of(0.0)))
	require.True(t, math.IsInf(f.At(0), 1))

	assert.Panics(t, func() {
		seqvec.Eval(seqvec.Of[int64](1).Div(seqvec.Of[int64](0)))
	})
}

func TestNeg(t *testing.T) {
	t.Parallel()
	a := seqvec.Of[int64](1, -2, 3)
	got := a.Neg()
	require.True(t, got.ElemsEqual(seqvec.Of[int64](-1, 2, -3)))
	require.True(t, a.ElemsEqual(seqvec.Of[int64](1, -2, 3)), "Neg copies")
}
