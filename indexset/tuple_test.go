// SPDX-License-Identifier: MIT

package indexset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTuple_Valid(t *testing.T) {
	tp, err := NewTuple("A", 3, 1.5, true)
	require.NoError(t, err)
	assert.Equal(t, 4, tp.Len())
	assert.Equal(t, "A", tp.At(0))
	assert.Equal(t, 3, tp.At(1))
	assert.Equal(t, []any{"A", 3, 1.5, true}, tp.Components())
}

func TestNewTuple_Empty(t *testing.T) {
	_, err := NewTuple()
	assert.ErrorIs(t, err, ErrEmptyTuple)
}

func TestNewTuple_NonScalar(t *testing.T) {
	_, err := NewTuple("A", []int{1, 2})
	assert.ErrorIs(t, err, ErrNonScalar)

	_, err = NewTuple(nil)
	assert.ErrorIs(t, err, ErrNonScalar)
}

func TestT_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { T() })
	assert.Panics(t, func() { T(struct{}{}) })
	assert.NotPanics(t, func() { T("ok", 1) })
}

func TestTuple_WidthInsensitiveEquality(t *testing.T) {
	cases := []struct {
		name string
		a, b Tuple
	}{
		{"int vs int64", T(1, "x"), T(int64(1), "x")},
		{"int vs int8", T(7), T(int8(7))},
		{"int vs uint", T(42), T(uint(42))},
		{"uint32 vs int16", T(uint32(9)), T(int16(9))},
		{"float32 vs float64", T(float32(1.5)), T(1.5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.a.Equal(tc.b))
			assert.Equal(t, tc.a.Key(), tc.b.Key())
		})
	}
}

func TestTuple_DistinctValues(t *testing.T) {
	assert.False(t, T(1).Equal(T(2)))
	assert.False(t, T("1").Equal(T(1)))
	assert.False(t, T(true).Equal(T(1)))
	assert.False(t, T(1.0).Equal(T(1)))
}

func TestTuple_TimeByInstant(t *testing.T) {
	utc := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	shifted := utc.In(time.FixedZone("X", 3600))
	assert.True(t, T(utc).Equal(T(shifted)))
}

func TestTuple_KeyInjective(t *testing.T) {
	// Adjacent string components must not merge across the separator.
	a := T("ab", "c")
	b := T("a", "bc")
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestTuple_String(t *testing.T) {
	assert.Equal(t, "(A, 3)", T("A", 3).String())
}

func TestTuple_DropInsertPick(t *testing.T) {
	tp := T("A", "B", "C")

	dropped, err := tp.Drop(1)
	require.NoError(t, err)
	assert.True(t, dropped.Equal(T("A", "C")))
	_, err = tp.Drop(3)
	assert.ErrorIs(t, err, ErrDimRange)
	_, err = T("solo").Drop(0)
	assert.ErrorIs(t, err, ErrEmptyTuple)

	grown, err := tp.Insert(1, "X")
	require.NoError(t, err)
	assert.True(t, grown.Equal(T("A", "X", "B", "C")))
	tail, err := tp.Insert(3, "Z")
	require.NoError(t, err)
	assert.True(t, tail.Equal(T("A", "B", "C", "Z")))
	_, err = tp.Insert(4, "Z")
	assert.ErrorIs(t, err, ErrDimRange)
	_, err = tp.Insert(0, []int{1})
	assert.ErrorIs(t, err, ErrNonScalar)

	assert.True(t, tp.pick([]int{2, 0}).Equal(T("C", "A")))
	// Original untouched.
	assert.True(t, tp.Equal(T("A", "B", "C")))
}
