// SPDX-License-Identifier: MIT

package table

import "errors"

var (
	// ErrNoColumns indicates a frame with no columns.
	ErrNoColumns = errors.New("table: no columns")

	// ErrDuplicateColumn indicates two columns sharing one name.
	ErrDuplicateColumn = errors.New("table: duplicate column name")

	// ErrRaggedColumns indicates columns of unequal length.
	ErrRaggedColumns = errors.New("table: columns have unequal lengths")

	// ErrColumnNotFound indicates the requested column name is absent.
	ErrColumnNotFound = errors.New("table: column not found")

	// ErrNoHeader indicates CSV input without a header row.
	ErrNoHeader = errors.New("table: missing header row")

	// ErrParse indicates a cell that does not parse as its column's kind.
	ErrParse = errors.New("table: cell parse failure")

	// ErrNotNumeric indicates a value column that is neither Int nor Float.
	ErrNotNumeric = errors.New("table: column is not numeric")

	// ErrEmptyTable indicates a cast from a frame with zero rows.
	ErrEmptyTable = errors.New("table: no rows")
)
