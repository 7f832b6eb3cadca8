// SPDX-License-Identifier: MIT
// Package indexset: sentinel error set.
// All operations return these sentinels and tests check them via errors.Is.
// No operation panics on user-triggered error conditions; panics are reserved
// for programmer errors (the T literal constructor, out-of-range Tuple.At).

package indexset

import "errors"

var (
	// ErrDuplicate indicates an insertion would introduce a duplicate element.
	ErrDuplicate = errors.New("indexset: duplicate element")

	// ErrNotFound indicates the requested element is not in the set.
	ErrNotFound = errors.New("indexset: element not found")

	// ErrIndexRange indicates a position index is out of range.
	ErrIndexRange = errors.New("indexset: position index out of range")

	// ErrEmptySet indicates an operation that requires a populated set was
	// invoked on an empty one (Subset, Squeeze, WithinProduct).
	ErrEmptySet = errors.New("indexset: set is empty")

	// ErrNonScalar indicates a component is not a supported scalar type
	// (string, bool, integer, float, or time.Time).
	ErrNonScalar = errors.New("indexset: non-scalar component")

	// ErrEmptyTuple indicates a tuple with zero components.
	ErrEmptyTuple = errors.New("indexset: tuple has no components")

	// ErrArityMismatch indicates a tuple, pattern, or per-dimension argument
	// whose length differs from the set's element arity.
	ErrArityMismatch = errors.New("indexset: arity mismatch")

	// ErrBadPattern indicates a wildcard pattern with no wildcard, all
	// wildcards, or a dimension selection that keeps nothing / everything.
	ErrBadPattern = errors.New("indexset: bad wildcard pattern")

	// ErrDimRange indicates a dimension index outside [0, arity).
	ErrDimRange = errors.New("indexset: dimension index out of range")
)
