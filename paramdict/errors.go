// SPDX-License-Identifier: MIT

package paramdict

import "errors"

var (
	// ErrKeyNotFound indicates the requested key is not in the dictionary.
	ErrKeyNotFound = errors.New("paramdict: key not found")

	// ErrDuplicate indicates a constructor input repeats a key.
	ErrDuplicate = errors.New("paramdict: duplicate key")

	// ErrEmptyDict indicates a reduction that needs at least one value was
	// invoked on an empty dictionary (Min, Max, Mean, Median variants).
	ErrEmptyDict = errors.New("paramdict: dictionary is empty")

	// ErrDimNotConstant indicates Squeeze targeted a dimension whose
	// component varies across keys.
	ErrDimNotConstant = errors.New("paramdict: dimension is not constant")

	// ErrDimRange indicates a dimension index outside the valid range.
	ErrDimRange = errors.New("paramdict: dimension index out of range")

	// ErrNilSet indicates a constructor was handed a nil index-set or a nil
	// value producer.
	ErrNilSet = errors.New("paramdict: nil index-set")
)
