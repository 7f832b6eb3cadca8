// SPDX-License-Identifier: MIT

package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samarthmistry/opti-extensions/indexset"
)

const arcsCSV = `origin,dest,cost,open
A,X,4.5,true
A,Y,7.0,false
B,X,3.25,true
`

var arcsSchema = Schema{"cost": Float, "open": Bool}

func arcsFrame(t *testing.T) *Frame {
	t.Helper()
	f, err := FromCSV("arcs", strings.NewReader(arcsCSV), arcsSchema)
	require.NoError(t, err)
	return f
}

func TestFromColumns(t *testing.T) {
	f, err := FromColumns("caps",
		StringColumn("plant", "ATL", "CHI"),
		IntColumn("cap", 90, 120),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, f.NumRows())
	assert.Equal(t, 2, f.NumCols())
	assert.Equal(t, []string{"plant", "cap"}, f.ColumnNames())

	c, err := f.Column("cap")
	require.NoError(t, err)
	assert.Equal(t, Int, c.Kind())
	assert.Equal(t, []any{int64(90), int64(120)}, c.Values())

	_, err = f.Column("ghost")
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = FromColumns("empty")
	assert.ErrorIs(t, err, ErrNoColumns)

	_, err = FromColumns("dup",
		StringColumn("a", "x"), FloatColumn("a", 1))
	assert.ErrorIs(t, err, ErrDuplicateColumn)

	_, err = FromColumns("ragged",
		StringColumn("a", "x", "y"), FloatColumn("b", 1))
	assert.ErrorIs(t, err, ErrRaggedColumns)
}

func TestFromCSV(t *testing.T) {
	f := arcsFrame(t)
	assert.Equal(t, 3, f.NumRows())
	assert.Equal(t, []string{"origin", "dest", "cost", "open"}, f.ColumnNames())

	cost, err := f.Column("cost")
	require.NoError(t, err)
	assert.Equal(t, Float, cost.Kind())
	assert.Equal(t, []any{4.5, 7.0, 3.25}, cost.Values())

	open, err := f.Column("open")
	require.NoError(t, err)
	assert.Equal(t, []any{true, false, true}, open.Values())

	// Unscheduled columns stay strings.
	origin, err := f.Column("origin")
	require.NoError(t, err)
	assert.Equal(t, String, origin.Kind())
}

func TestFromCSV_Errors(t *testing.T) {
	_, err := FromCSV("empty", strings.NewReader(""), nil)
	assert.ErrorIs(t, err, ErrNoHeader)

	_, err = FromCSV("bad", strings.NewReader("a\nnot-a-number\n"),
		Schema{"a": Int})
	assert.ErrorIs(t, err, ErrParse)
}

func TestToIndexSet1D(t *testing.T) {
	f, err := FromColumns("plants", StringColumn("plant", "ATL", "CHI"))
	require.NoError(t, err)

	s, err := f.ToIndexSet1D("plant")
	require.NoError(t, err)
	assert.Equal(t, "plant", s.Name())
	assert.Equal(t, []any{"ATL", "CHI"}, s.Elems())

	_, err = f.ToIndexSet1D("ghost")
	assert.ErrorIs(t, err, ErrColumnNotFound)

	dup, err := FromColumns("dup", StringColumn("p", "A", "A"))
	require.NoError(t, err)
	_, err = dup.ToIndexSet1D("p")
	assert.ErrorIs(t, err, indexset.ErrDuplicate)

	// Int cells cast as int64; the any-typed result is width-sensitive.
	ids, err := FromColumns("ids", IntColumn("id", 1, 2))
	require.NoError(t, err)
	is, err := ids.ToIndexSet1D("id")
	require.NoError(t, err)
	assert.True(t, is.Contains(int64(1)))
	assert.False(t, is.Contains(1))
}

func TestToIndexSetND(t *testing.T) {
	f := arcsFrame(t)

	s, err := f.ToIndexSetND("origin", "dest")
	require.NoError(t, err)
	assert.Equal(t, "arcs", s.Name())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(indexset.T("A", "Y")))

	// Column order defines dimension order.
	rev, err := f.ToIndexSetND("dest", "origin")
	require.NoError(t, err)
	assert.True(t, rev.Contains(indexset.T("Y", "A")))

	_, err = f.ToIndexSetND()
	assert.ErrorIs(t, err, ErrNoColumns)
	_, err = f.ToIndexSetND("origin", "ghost")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestToParamDict1D(t *testing.T) {
	f, err := FromColumns("caps",
		StringColumn("plant", "ATL", "CHI"),
		IntColumn("cap", 90, 120),
	)
	require.NoError(t, err)

	d, err := f.ToParamDict1D("plant", "cap")
	require.NoError(t, err)
	assert.Equal(t, "cap", d.Name())
	assert.Equal(t, 90.0, d.Lookup("ATL"))
	assert.Equal(t, 120.0, d.Lookup("CHI"))

	_, err = f.ToParamDict1D("plant", "plant")
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestToParamDictND(t *testing.T) {
	f := arcsFrame(t)

	d, err := f.ToParamDictND("cost", "origin", "dest")
	require.NoError(t, err)
	assert.Equal(t, "cost", d.Name())
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 7.0, d.Lookup(indexset.T("A", "Y")))

	sum, err := d.Sum("A", indexset.Wildcard)
	require.NoError(t, err)
	assert.Equal(t, 11.5, sum)

	_, err = f.ToParamDictND("open", "origin", "dest")
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestCasts_EmptyFrame(t *testing.T) {
	// A header-only CSV parses fine but casts to nothing.
	f, err := FromCSV("arcs", strings.NewReader("origin,dest,cost\n"), arcsSchema)
	require.NoError(t, err)
	assert.Zero(t, f.NumRows())

	_, err = f.ToIndexSet1D("origin")
	assert.ErrorIs(t, err, ErrEmptyTable)
	_, err = f.ToIndexSetND("origin", "dest")
	assert.ErrorIs(t, err, ErrEmptyTable)
	_, err = f.ToParamDict1D("origin", "cost")
	assert.ErrorIs(t, err, ErrEmptyTable)
	_, err = f.ToParamDictND("cost", "origin", "dest")
	assert.ErrorIs(t, err, ErrEmptyTable)
}
