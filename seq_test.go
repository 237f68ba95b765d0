package seqvec_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myceliumweb.org/seqvec"
)

func TestGrowthOnWrite(t *testing.T) {
	t.Parallel()
	c := seqvec.New[float64]()
	c.Set(999, 5.0)
	require.Equal(t, 1000, c.Len())
	for i := 0; i < 999; i++ {
		require.Equal(t, 0.0, c.At(i))
	}
	require.Equal(t, 5.0, c.At(999))
}

func TestSetOrderIndependent(t *testing.T) {
	t.Parallel()
	c := seqvec.New[int64]()
	c.Set(3, 30)
	c.Set(0, 1)
	c.Set(3, 31)
	require.Equal(t, 4, c.Len())
	require.True(t, c.ElemsEqual(seqvec.Of[int64](1, 0, 0, 31)))
}

func TestAtIsTotal(t *testing.T) {
	t.Parallel()
	c := seqvec.Of[int64](7)
	require.Equal(t, int64(7), c.At(0))
	require.Equal(t, int64(0), c.At(100))
	require.Equal(t, 1, c.Len(), "reading past the end must not grow")
}

func TestCompoundAssignGrows(t *testing.T) {
	t.Parallel()
	m := seqvec.Of[int64](1, 2, 3)
	n := seqvec.Of[int64](0, 1, 2, 3, 4)
	m.AddEq(n)
	require.Equal(t, 5, m.Len())
	require.True(t, m.ElemsEqual(seqvec.Of[int64](1, 3, 5, 3, 4)))
	require.Equal(t, "(1,3,5,3,4)", m.String())
}

func TestLengthOnlyComparison(t *testing.T) {
	t.Parallel()
	// Equality is by length alone.  Two sequences holding different values
	// compare as equivalent whenever their lengths match; ElemsEqual is the
	// value-wise check.
	a := seqvec.Of[int64](1, 2, 3)
	b := seqvec.Of[int64](9, 9, 9)
	assert.True(t, a.Equal(b))
	assert.False(t, a.ElemsEqual(b))
	assert.Equal(t, 0, a.Cmp(b))
	assert.Equal(t, -1, a.Cmp(seqvec.Of[int64](1, 2, 3, 4)))
	assert.Equal(t, 1, a.Cmp(seqvec.Of[int64](1)))
}

func TestAny(t *testing.T) {
	t.Parallel()
	c := seqvec.New[int64]().Resize(10)
	assert.False(t, c.Any())
	assert.False(t, seqvec.New[int64]().Any())
	c.Set(7, 1)
	assert.True(t, c.Any())
}

func TestPushPop(t *testing.T) {
	t.Parallel()
	c := seqvec.New[int64]()
	c.PopBack() // no-op on empty
	require.Equal(t, 0, c.Len())
	c.PushBack(1).PushBack(2)
	require.Equal(t, "(1,2)", c.String())
	c.PopBack()
	require.Equal(t, "(1)", c.String())
}

func TestResizeReserve(t *testing.T) {
	t.Parallel()
	c := seqvec.Of[int64](1, 2, 3)
	c.ResizeFill(5, 9)
	require.True(t, c.ElemsEqual(seqvec.Of[int64](1, 2, 3, 9, 9)))
	c.Resize(2)
	require.True(t, c.ElemsEqual(seqvec.Of[int64](1, 2)))
	c.Resize(0)
	require.Equal(t, 0, c.Len())

	c = seqvec.Of[int64](1)
	c.Reserve(100)
	require.Equal(t, 1, c.Len())
	require.GreaterOrEqual(t, c.Cap(), 100)
}

func TestInsert(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		base     []int64
		at       int
		vs       []int64
		expected []int64
	}{
		{[]int64{1, 2, 3}, 1, []int64{9}, []int64{1, 9, 2, 3}},
		{[]int64{1, 2}, 0, []int64{8, 9}, []int64{8, 9, 1, 2}},
		{[]int64{1, 2}, 2, []int64{3}, []int64{1, 2, 3}},
		// inserting past the end zero fills up to the insertion point
		{[]int64{1}, 3, []int64{7}, []int64{1, 0, 0, 7}},
		{nil, 2, []int64{5}, []int64{0, 0, 5}},
	}
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			c := seqvec.Of(tc.base...)
			c.Insert(tc.at, tc.vs...)
			require.True(t, c.ElemsEqual(seqvec.Of(tc.expected...)), "got %v", c)
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()
	c := seqvec.Of[int64](1, 2, 3)
	c.Apply(func(a int64) int64 { return a * 10 })
	require.True(t, c.ElemsEqual(seqvec.Of[int64](10, 20, 30)))
}

func TestTryApplyPropagates(t *testing.T) {
	t.Parallel()
	errBoom := errors.New("boom")
	c := seqvec.Of[int64](1, 2, 3, 4)
	var seen []int64
	err := c.TryApply(func(a int64) (int64, error) {
		if a == 3 {
			return 0, errBoom
		}
		seen = append(seen, a)
		return a + 1, nil
	})
	require.ErrorIs(t, err, errBoom)
	// ascending order, and elements before the failure stay transformed
	require.Equal(t, []int64{1, 2}, seen)
	require.True(t, c.ElemsEqual(seqvec.Of[int64](2, 3, 3, 4)))
}

func TestZipGrows(t *testing.T) {
	t.Parallel()
	c := seqvec.Of[int64](1, 2)
	c.Zip(seqvec.Of[int64](10, 10, 10), func(a, b int64) int64 { return a + b })
	require.True(t, c.ElemsEqual(seqvec.Of[int64](11, 12, 10)))
}

func TestAssign(t *testing.T) {
	t.Parallel()
	// a longer destination keeps its length; the uncovered tail reads the
	// source's zero element and is overwritten with it
	c := seqvec.Of[int64](9, 9, 9, 9)
	c.Assign(seqvec.Of[int64](1, 2))
	require.True(t, c.ElemsEqual(seqvec.Of[int64](1, 2, 0, 0)))

	c = seqvec.Of[int64](1)
	c.Assign(seqvec.Of[int64](5, 6, 7))
	require.True(t, c.ElemsEqual(seqvec.Of[int64](5, 6, 7)))
}

func TestCloneIndependent(t *testing.T) {
	t.Parallel()
	a := seqvec.Of[int64](1, 2, 3)
	b := a.Clone()
	b.Set(0, 99)
	require.Equal(t, int64(1), a.At(0))
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", seqvec.New[int64]().String())
	assert.Equal(t, "(1,2,3)", seqvec.Of[int64](1, 2, 3).String())
	assert.Equal(t, "(1.5,2.5)", seqvec.Of(1.5, 2.5).String())
}

func TestAllIteration(t *testing.T) {
	t.Parallel()
	c := seqvec.Of[int64](5, 6, 7)
	var idxs []int
	var vals []int64
	for i, v := range c.All() {
		idxs = append(idxs, i)
		vals = append(vals, v)
	}
	require.Equal(t, []int{0, 1, 2}, idxs)
	require.Equal(t, []int64{5, 6, 7}, vals)
}
