// SPDX-License-Identifier: MIT

package indexset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew1D_PreservesOrder(t *testing.T) {
	s, err := New1D("C", "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"C", "A", "B"}, s.Elems())
}

func TestNew1D_RejectsDuplicates(t *testing.T) {
	_, err := New1D(1, 2, 1)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestIndexSet1D_Name(t *testing.T) {
	s, _ := New1D(1, 2)
	assert.Empty(t, s.Name())
	s.SetName("periods")
	assert.Equal(t, "periods", s.Name())
}

func TestIndexSet1D_ContainsAndIndex(t *testing.T) {
	s, _ := New1D("x", "y", "z")

	assert.True(t, s.Contains("y"))
	assert.False(t, s.Contains("w"))

	i, err := s.Index("z")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = s.Index("w")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIndexSet1D_ContainsComponent(t *testing.T) {
	s, _ := New1D("x", "y")
	assert.True(t, s.ContainsComponent("x"))
	assert.False(t, s.ContainsComponent("w"))
	assert.False(t, s.ContainsComponent(42)) // wrong dynamic type
}

func TestIndexSet1D_AtSetAt(t *testing.T) {
	s, _ := New1D(10, 20, 30)

	v, err := s.At(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	_, err = s.At(3)
	assert.ErrorIs(t, err, ErrIndexRange)

	require.NoError(t, s.SetAt(1, 25))
	assert.Equal(t, []int{10, 25, 30}, s.Elems())
	assert.False(t, s.Contains(20))

	// Replacing with itself is a no-op, not a duplicate.
	require.NoError(t, s.SetAt(0, 10))
	// Replacing with another member fails and changes nothing.
	err = s.SetAt(0, 30)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, []int{10, 25, 30}, s.Elems())
}

func TestIndexSet1D_AppendExtendInsert(t *testing.T) {
	s, _ := New1D(1)

	require.NoError(t, s.Append(2))
	assert.ErrorIs(t, s.Append(1), ErrDuplicate)

	require.NoError(t, s.Extend(3, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, s.Elems())

	// Extend is all-or-nothing.
	err := s.Extend(5, 3)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, []int{1, 2, 3, 4}, s.Elems())
	err = s.Extend(6, 6)
	assert.ErrorIs(t, err, ErrDuplicate)

	require.NoError(t, s.Insert(0, 0))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, s.Elems())
	require.NoError(t, s.Insert(5, 5))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, s.Elems())
	assert.ErrorIs(t, s.Insert(99, 9), ErrIndexRange)
}

func TestIndexSet1D_RemovePop(t *testing.T) {
	s, _ := New1D("a", "b", "c", "d")

	require.NoError(t, s.Remove("b"))
	assert.Equal(t, []string{"a", "c", "d"}, s.Elems())
	assert.ErrorIs(t, s.Remove("b"), ErrNotFound)

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "d", v)

	v, err = s.PopAt(0)
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, []string{"c"}, s.Elems())

	_, err = s.PopAt(5)
	assert.ErrorIs(t, err, ErrIndexRange)
}

func TestIndexSet1D_Clear(t *testing.T) {
	s, _ := New1D(1, 2, 3)
	s.Clear()
	assert.Zero(t, s.Len())
	assert.False(t, s.Contains(1))
	require.NoError(t, s.Append(1))
}

func TestIndexSet1D_SortReverse(t *testing.T) {
	s, _ := New1D(3, 1, 2)

	SortAscending(s)
	assert.Equal(t, []int{1, 2, 3}, s.Elems())

	SortDescending(s)
	assert.Equal(t, []int{3, 2, 1}, s.Elems())

	s.Reverse()
	assert.Equal(t, []int{1, 2, 3}, s.Elems())

	s.Sort(func(a, b int) bool { return a%2 < b%2 }) // evens first, stable
	assert.Equal(t, []int{2, 1, 3}, s.Elems())
}

func TestIndexSet1D_Comparisons(t *testing.T) {
	ab, _ := New1D("a", "b")
	ba, _ := New1D("b", "a")
	abc, _ := New1D("a", "b", "c")
	cd, _ := New1D("c", "d")
	empty, _ := New1D[string]()

	assert.True(t, ab.Equal(ba)) // order-insensitive
	assert.False(t, ab.Equal(abc))

	assert.True(t, ab.IsSubset(abc))
	assert.True(t, ab.IsProperSubset(abc))
	assert.True(t, ab.IsSubset(ba))
	assert.False(t, ab.IsProperSubset(ba))

	assert.True(t, abc.IsSuperset(ab))
	assert.True(t, abc.IsProperSuperset(ab))
	assert.False(t, ab.IsProperSuperset(ba))

	assert.True(t, ab.IsDisjoint(cd))
	assert.False(t, ab.IsDisjoint(abc))

	// nil treated as empty.
	assert.True(t, empty.Equal(nil))
	assert.False(t, ab.Equal(nil))
	assert.True(t, empty.IsSubset(nil))
	assert.True(t, ab.IsSuperset(nil))
	assert.True(t, ab.IsProperSuperset(nil))
	assert.True(t, ab.IsDisjoint(nil))
}

func TestIndexSet1D_Algebra(t *testing.T) {
	left, _ := New1D("b", "a", "c")
	left.SetName("L")
	right, _ := New1D("c", "d", "a")

	u := left.Union(right)
	assert.Equal(t, []string{"b", "a", "c", "d"}, u.Elems())
	assert.Equal(t, "L", u.Name())

	assert.Equal(t, []string{"a", "c"}, left.Intersect(right).Elems())
	assert.Equal(t, []string{"b"}, left.Difference(right).Elems())
	assert.Equal(t, []string{"b", "d"}, left.SymmetricDifference(right).Elems())

	// Self-operands: union and intersection are idempotent.
	assert.True(t, left.Equal(left.Union(left)))
	assert.True(t, left.Equal(left.Intersect(left)))
	assert.Equal(t, []string{"b", "a", "c"}, left.Union(left).Elems())

	// Results are detached from the operands.
	require.NoError(t, u.Append("z"))
	assert.False(t, left.Contains("z"))

	// nil operand.
	assert.Equal(t, []string{"b", "a", "c"}, left.Union(nil).Elems())
	assert.Zero(t, left.Intersect(nil).Len())
	assert.Equal(t, []string{"b", "a", "c"}, left.Difference(nil).Elems())
}

func TestIndexSet1D_AnyElems(t *testing.T) {
	s, _ := New1D(1, 2)
	assert.Equal(t, []any{1, 2}, s.AnyElems())
}
