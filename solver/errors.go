// SPDX-License-Identifier: MIT

package solver

import "errors"

var (
	// ErrUnknownVarType indicates a variable-type name ParseVarType does not
	// recognize.
	ErrUnknownVarType = errors.New("solver: unknown variable type")

	// ErrInfeasibleBounds indicates a lower bound above an upper bound.
	ErrInfeasibleBounds = errors.New("solver: lower bound exceeds upper bound")
)
