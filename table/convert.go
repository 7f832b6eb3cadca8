// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/samarthmistry/opti-extensions/indexset"
	"github.com/samarthmistry/opti-extensions/paramdict"
)

// Casts from frames into the modeling containers. Row order becomes key
// order; duplicate keys surface the container's own sentinel. Zero-row
// frames are rejected with ErrEmptyTable, an empty container is almost
// always a data-loading mistake.
//
// Cells keep their parsed Go types (Int cells are int64), and the any-typed
// 1-D results compare elements with plain ==, so membership and key lookups
// on them are width-sensitive. Tuple-keyed results are not: IndexSetND and
// ParamDictND match components by value across integer widths.

// ToIndexSet1D casts one column into a 1-D index-set.
func (f *Frame) ToIndexSet1D(col string) (*indexset.IndexSet1D[any], error) {
	if f.NumRows() == 0 {
		return nil, ErrEmptyTable
	}
	c, err := f.Column(col)
	if err != nil {
		return nil, err
	}
	s, err := indexset.New1D(c.vals...)
	if err != nil {
		return nil, err
	}
	s.SetName(col)
	return s, nil
}

// ToIndexSetND casts the given columns, in order, into an N-D index-set
// whose tuples are the rows.
func (f *Frame) ToIndexSetND(cols ...string) (*indexset.IndexSetND, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	if f.NumRows() == 0 {
		return nil, ErrEmptyTable
	}
	picked := make([]Column, len(cols))
	for i, name := range cols {
		c, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		picked[i] = c
	}

	s, err := indexset.NewND()
	if err != nil {
		return nil, err
	}
	s.SetName(f.name)
	comps := make([]any, len(picked))
	for r := 0; r < f.NumRows(); r++ {
		for i, c := range picked {
			comps[i] = c.vals[r]
		}
		t, err := indexset.NewTuple(comps...)
		if err != nil {
			return nil, err
		}
		if err := s.Append(t); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ToParamDict1D casts a key column and a numeric value column into a 1-D
// parameter dictionary.
func (f *Frame) ToParamDict1D(keyCol, valCol string) (*paramdict.ParamDict1D[any, float64], error) {
	if f.NumRows() == 0 {
		return nil, ErrEmptyTable
	}
	kc, err := f.Column(keyCol)
	if err != nil {
		return nil, err
	}
	vals, err := f.numericColumn(valCol)
	if err != nil {
		return nil, err
	}

	entries := make([]paramdict.Entry1D[any, float64], len(vals))
	for r, v := range vals {
		entries[r] = paramdict.Entry1D[any, float64]{Key: kc.vals[r], Value: v}
	}
	d, err := paramdict.FromEntries1D(entries...)
	if err != nil {
		return nil, err
	}
	d.SetName(valCol)
	return d, nil
}

// ToParamDictND casts the given key columns and a numeric value column into
// an N-D parameter dictionary whose keys are the row tuples.
func (f *Frame) ToParamDictND(valCol string, keyCols ...string) (*paramdict.ParamDictND[float64], error) {
	keys, err := f.ToIndexSetND(keyCols...)
	if err != nil {
		return nil, err
	}
	vals, err := f.numericColumn(valCol)
	if err != nil {
		return nil, err
	}

	entries := make([]paramdict.EntryND[float64], len(vals))
	for r, t := range keys.Elems() {
		entries[r] = paramdict.EntryND[float64]{Key: t, Value: vals[r]}
	}
	d, err := paramdict.FromEntriesND(entries...)
	if err != nil {
		return nil, err
	}
	d.SetName(valCol)
	return d, nil
}

// numericColumn widens an Int or Float column to float64.
func (f *Frame) numericColumn(name string) ([]float64, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(c.vals))
	switch c.kind {
	case Int:
		for i, v := range c.vals {
			out[i] = float64(v.(int64))
		}
	case Float:
		for i, v := range c.vals {
			out[i] = v.(float64)
		}
	default:
		return nil, fmt.Errorf("%w: %s is %v", ErrNotNumeric, name, c.kind)
	}
	return out, nil
}
