// SPDX-License-Identifier: MIT

package vardict

import "errors"

var (
	// ErrNilModel indicates AddVariables was handed a nil backend model.
	ErrNilModel = errors.New("vardict: nil model")

	// ErrNilSet indicates a constructor was handed a nil index-set.
	ErrNilSet = errors.New("vardict: nil index-set")

	// ErrNilDict indicates Dot was handed a nil parameter dictionary.
	ErrNilDict = errors.New("vardict: nil parameter dictionary")

	// ErrEmptySet indicates an index-set with no members, which would create
	// a variable dictionary no expression could ever use.
	ErrEmptySet = errors.New("vardict: index-set is empty")

	// ErrKeyNotFound indicates the requested key has no variable.
	ErrKeyNotFound = errors.New("vardict: key not found")

	// ErrKeyMismatch indicates Wrap received a handle count that does not
	// match the key set.
	ErrKeyMismatch = errors.New("vardict: handles do not match key set")

	// ErrArityMismatch indicates DotND operands with different key arities.
	ErrArityMismatch = errors.New("vardict: arity mismatch")
)
