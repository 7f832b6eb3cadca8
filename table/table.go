// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"strings"
)

// Kind is the parsed type of a column's cells.
type Kind int

const (
	// String cells are kept verbatim.
	String Kind = iota
	// Int cells parse as int64.
	Int
	// Float cells parse as float64.
	Float
	// Bool cells parse with strconv.ParseBool.
	Bool
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Column is one named, homogeneously-typed sequence of cells.
type Column struct {
	name string
	kind Kind
	vals []any
}

// StringColumn builds a String column.
func StringColumn(name string, vals ...string) Column {
	c := Column{name: name, kind: String, vals: make([]any, len(vals))}
	for i, v := range vals {
		c.vals[i] = v
	}
	return c
}

// IntColumn builds an Int column.
func IntColumn(name string, vals ...int64) Column {
	c := Column{name: name, kind: Int, vals: make([]any, len(vals))}
	for i, v := range vals {
		c.vals[i] = v
	}
	return c
}

// FloatColumn builds a Float column.
func FloatColumn(name string, vals ...float64) Column {
	c := Column{name: name, kind: Float, vals: make([]any, len(vals))}
	for i, v := range vals {
		c.vals[i] = v
	}
	return c
}

// BoolColumn builds a Bool column.
func BoolColumn(name string, vals ...bool) Column {
	c := Column{name: name, kind: Bool, vals: make([]any, len(vals))}
	for i, v := range vals {
		c.vals[i] = v
	}
	return c
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Kind returns the column's cell type.
func (c Column) Kind() Kind { return c.kind }

// Len returns the number of cells.
func (c Column) Len() int { return len(c.vals) }

// Values returns a copy of the cells as dynamically-typed scalars, ready for
// tuple components.
func (c Column) Values() []any {
	cp := make([]any, len(c.vals))
	copy(cp, c.vals)
	return cp
}

// Frame is an ordered collection of equal-length columns: the staging area
// between raw tabular data and the modeling containers.
type Frame struct {
	name   string
	cols   []Column
	byName map[string]int
}

// FromColumns builds a frame from the given columns. Columns must be
// uniquely named and equally long.
func FromColumns(name string, cols ...Column) (*Frame, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	f := &Frame{name: name, cols: cols, byName: make(map[string]int, len(cols))}
	for i, c := range cols {
		if _, dup := f.byName[c.name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, c.name)
		}
		f.byName[c.name] = i
		if c.Len() != cols[0].Len() {
			return nil, fmt.Errorf("%w: %s has %d rows, %s has %d",
				ErrRaggedColumns, c.name, c.Len(), cols[0].name, cols[0].Len())
		}
	}
	return f, nil
}

// Name returns the frame's name.
func (f *Frame) Name() string { return f.name }

// NumRows returns the number of rows.
func (f *Frame) NumRows() int { return f.cols[0].Len() }

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.cols) }

// ColumnNames returns the column names in order.
func (f *Frame) ColumnNames() []string {
	out := make([]string, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.name
	}
	return out
}

// Column returns the named column, or ErrColumnNotFound.
func (f *Frame) Column(name string) (Column, error) {
	i, ok := f.byName[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	return f.cols[i], nil
}

// String renders the frame as "Frame(name): 4 rows x [a b c]".
func (f *Frame) String() string {
	return fmt.Sprintf("Frame(%s): %d rows x [%s]",
		f.name, f.NumRows(), strings.Join(f.ColumnNames(), " "))
}
