// SPDX-License-Identifier: MIT

package paramdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samarthmistry/opti-extensions/indexset"
)

func cost(t *testing.T) *ParamDictND[float64] {
	t.Helper()
	d, err := FromEntriesND(
		EntryND[float64]{Key: indexset.T("A", "X"), Value: 4},
		EntryND[float64]{Key: indexset.T("A", "Y"), Value: 7},
		EntryND[float64]{Key: indexset.T("B", "X"), Value: 3},
		EntryND[float64]{Key: indexset.T("B", "Z"), Value: 6},
	)
	require.NoError(t, err)
	return d
}

func TestFromEntriesND(t *testing.T) {
	d := cost(t)
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, 2, d.Arity())
	assert.Equal(t, []float64{4, 7, 3, 6}, d.Values())

	_, err := FromEntriesND(
		EntryND[int]{Key: indexset.T("A", 1), Value: 1},
		EntryND[int]{Key: indexset.T("A", int64(1)), Value: 2},
	)
	assert.ErrorIs(t, err, indexset.ErrDuplicate)

	_, err = FromEntriesND(
		EntryND[int]{Key: indexset.T("A", 1), Value: 1},
		EntryND[int]{Key: indexset.T("A"), Value: 2},
	)
	assert.ErrorIs(t, err, indexset.ErrArityMismatch)
}

func TestFromSetND(t *testing.T) {
	s, err := indexset.ProductND([]any{"A", "B"}, []any{1, 2})
	require.NoError(t, err)
	s.SetName("grid")

	d, err := FromSetND(s, Fill[indexset.Tuple, float64](0.5))
	require.NoError(t, err)
	assert.Equal(t, "grid", d.Name())
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, d.Values())

	// Values derived from the key.
	n, err := FromSetND(s, func(t indexset.Tuple) int {
		return t.At(1).(int) * 10
	})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 10, 20}, n.Values())

	_, err = FromSetND[float64](nil, Fill[indexset.Tuple, float64](0))
	assert.ErrorIs(t, err, ErrNilSet)
	_, err = FromSetND[float64](s, nil)
	assert.ErrorIs(t, err, ErrNilSet)
}

func TestParamDictND_GetLookupSet(t *testing.T) {
	d := cost(t)

	v, err := d.Get(indexset.T("A", "Y"))
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = d.Get(indexset.T("A", "Z"))
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Zero(t, d.Lookup(indexset.T("A", "Z")))

	// Width-insensitive key access.
	di, err := FromEntriesND(EntryND[int]{Key: indexset.T("p", 1), Value: 9})
	require.NoError(t, err)
	assert.Equal(t, 9, di.Lookup(indexset.T("p", int64(1))))

	// Overwrite keeps order, insert appends.
	require.NoError(t, d.Set(indexset.T("A", "X"), 40))
	require.NoError(t, d.Set(indexset.T("C", "X"), 1))
	assert.Equal(t, []float64{40, 7, 3, 6, 1}, d.Values())

	// New keys obey the arity.
	assert.ErrorIs(t, d.Set(indexset.T("C"), 1), indexset.ErrArityMismatch)
}

func TestParamDictND_Defaults(t *testing.T) {
	d := cost(t)

	v, err := d.SetDefault(indexset.T("A", "X"), 99)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v) // present, untouched

	v, err = d.SetDefault(indexset.T("C", "W"), 99)
	require.NoError(t, err)
	assert.Equal(t, 99.0, v)
	assert.Equal(t, 5, d.Len())

	// New keys obey the arity.
	_, err = d.SetDefault(indexset.T("C"), 1)
	assert.ErrorIs(t, err, indexset.ErrArityMismatch)

	assert.Equal(t, 99.0, d.PopDefault(indexset.T("C", "W"), -1))
	assert.False(t, d.Has(indexset.T("C", "W")))
	assert.Equal(t, -1.0, d.PopDefault(indexset.T("C", "W"), -1))
}

func TestParamDictND_RemovePop(t *testing.T) {
	d := cost(t)

	require.NoError(t, d.Remove(indexset.T("A", "Y")))
	assert.ErrorIs(t, d.Remove(indexset.T("A", "Y")), ErrKeyNotFound)
	assert.Equal(t, 3, d.Len())

	v, err := d.Pop(indexset.T("B", "X"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	k, v, err := d.PopItem()
	require.NoError(t, err)
	assert.True(t, k.Equal(indexset.T("B", "Z")))
	assert.Equal(t, 6.0, v)

	d.Clear()
	_, _, err = d.PopItem()
	assert.ErrorIs(t, err, ErrEmptyDict)
	assert.Zero(t, d.Arity())
}

func TestParamDictND_SubsetSelection(t *testing.T) {
	d := cost(t)

	keys, err := d.SubsetKeys("A", indexset.Wildcard)
	require.NoError(t, err)
	assert.Equal(t, []indexset.Tuple{indexset.T("A", "X"), indexset.T("A", "Y")}, keys)

	vals, err := d.SubsetValues(indexset.Wildcard, "X")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 3}, vals)

	sub, err := d.SubsetDict("B", indexset.Wildcard)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, sub.Values())
	// Detached from the source.
	require.NoError(t, sub.Set(indexset.T("B", "W"), 1))
	assert.False(t, d.Has(indexset.T("B", "W")))

	_, err = d.SubsetKeys(indexset.Wildcard, indexset.Wildcard)
	assert.ErrorIs(t, err, indexset.ErrBadPattern)
	_, err = d.SubsetValues("A")
	assert.ErrorIs(t, err, indexset.ErrArityMismatch)
}

func TestParamDictND_Reductions(t *testing.T) {
	d := cost(t) // 4, 7, 3, 6

	sum, err := d.Sum()
	require.NoError(t, err)
	assert.Equal(t, 20.0, sum)

	mn, err := d.Min()
	require.NoError(t, err)
	assert.Equal(t, 3.0, mn)

	mx, err := d.Max()
	require.NoError(t, err)
	assert.Equal(t, 7.0, mx)

	mean, err := d.Mean()
	require.NoError(t, err)
	assert.Equal(t, 5.0, mean)

	med, err := d.Median()
	require.NoError(t, err)
	assert.Equal(t, 5.0, med) // (4+6)/2

	lo, err := d.MedianLow()
	require.NoError(t, err)
	assert.Equal(t, 4.0, lo)

	hi, err := d.MedianHigh()
	require.NoError(t, err)
	assert.Equal(t, 6.0, hi)
}

func TestParamDictND_PatternReductions(t *testing.T) {
	d := cost(t)

	sum, err := d.Sum("A", indexset.Wildcard)
	require.NoError(t, err)
	assert.Equal(t, 11.0, sum)

	mn, err := d.Min(indexset.Wildcard, "X")
	require.NoError(t, err)
	assert.Equal(t, 3.0, mn)

	mean, err := d.Mean("B", indexset.Wildcard)
	require.NoError(t, err)
	assert.Equal(t, 4.5, mean)

	// No coverage: Sum is 0, the others report emptiness.
	sum, err = d.Sum("Q", indexset.Wildcard)
	require.NoError(t, err)
	assert.Zero(t, sum)
	_, err = d.Min("Q", indexset.Wildcard)
	assert.ErrorIs(t, err, ErrEmptyDict)

	// Bad patterns surface the indexset sentinels.
	_, err = d.Sum("A", "X")
	assert.ErrorIs(t, err, indexset.ErrBadPattern)
}

func TestParamDictND_Squeeze(t *testing.T) {
	d, err := FromEntriesND(
		EntryND[int]{Key: indexset.T("w", 2024, "p"), Value: 1},
		EntryND[int]{Key: indexset.T("w", 2025, "p"), Value: 2},
		EntryND[int]{Key: indexset.T("w", 2026, "q"), Value: 3},
	)
	require.NoError(t, err)
	d.SetName("stock")

	sq, err := d.Squeeze(0)
	require.NoError(t, err)
	assert.Equal(t, 2, sq.Arity())
	assert.Equal(t, "stock", sq.Name())
	assert.Equal(t, 2, sq.Lookup(indexset.T(2025, "p")))
	assert.Equal(t, []int{1, 2, 3}, sq.Values())

	_, err = d.Squeeze(1)
	assert.ErrorIs(t, err, ErrDimNotConstant)
	_, err = d.Squeeze(5)
	assert.ErrorIs(t, err, ErrDimRange)

	empty := NewND[int]()
	_, err = empty.Squeeze(0)
	assert.ErrorIs(t, err, ErrEmptyDict)
}

func TestParamDictND_Squeeze1D(t *testing.T) {
	d, err := FromEntriesND(
		EntryND[int]{Key: indexset.T("w", 1), Value: 10},
		EntryND[int]{Key: indexset.T("w", 2), Value: 20},
	)
	require.NoError(t, err)
	d.SetName("stock")

	flat, err := d.Squeeze1D(0)
	require.NoError(t, err)
	assert.Equal(t, "stock", flat.Name())
	assert.Equal(t, []any{1, 2}, flat.Keys())
	assert.Equal(t, 20, flat.Lookup(2))

	_, err = d.Squeeze1D(1)
	assert.ErrorIs(t, err, ErrDimNotConstant)

	deep, err := FromEntriesND(
		EntryND[int]{Key: indexset.T("w", 1, "p"), Value: 1},
	)
	require.NoError(t, err)
	_, err = deep.Squeeze1D(0)
	assert.ErrorIs(t, err, indexset.ErrArityMismatch)
}

func TestParamDictND_Expand(t *testing.T) {
	d, err := FromEntriesND(
		EntryND[int]{Key: indexset.T(1), Value: 10},
		EntryND[int]{Key: indexset.T(2), Value: 20},
	)
	require.NoError(t, err)

	ex, err := d.Expand(0, "w")
	require.NoError(t, err)
	assert.Equal(t, 2, ex.Arity())
	assert.Equal(t, 10, ex.Lookup(indexset.T("w", 1)))
	assert.Equal(t, 20, ex.Lookup(indexset.T("w", 2)))

	// Round trip back down.
	back, err := ex.Squeeze(0)
	require.NoError(t, err)
	assert.Equal(t, d.Values(), back.Values())

	_, err = d.Expand(5, "w")
	assert.ErrorIs(t, err, indexset.ErrDimRange)
	_, err = d.Expand(0, []int{1})
	assert.ErrorIs(t, err, indexset.ErrNonScalar)
}

func TestParamDictND_KeySetDetached(t *testing.T) {
	d := cost(t)
	s, err := d.KeySet()
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())

	require.NoError(t, s.Append(indexset.T("C", "C")))
	assert.False(t, d.Has(indexset.T("C", "C")))
}

func TestParamDictND_SortKeys(t *testing.T) {
	d := cost(t)
	d.SortKeys(func(a, b indexset.Tuple) bool { return a.String() > b.String() })
	assert.Equal(t, []float64{6, 3, 7, 4}, d.Values())

	// Subset still resolves after reordering.
	vals, err := d.SubsetValues("A", indexset.Wildcard)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 4}, vals)
}
