// SPDX-License-Identifier: MIT

package highs

import "errors"

var (
	// ErrUnsupportedVarType indicates a VarType outside continuous, integer
	// and binary.
	ErrUnsupportedVarType = errors.New("highs: unsupported variable type")

	// ErrUnknownVariable indicates an expression references a variable that
	// was not created by this model.
	ErrUnknownVariable = errors.New("highs: variable not from this model")

	// ErrQuadraticObjective indicates a quadratic objective, which the HiGHS
	// binding cannot carry.
	ErrQuadraticObjective = errors.New("highs: quadratic objective not supported")

	// ErrQuadraticConstraint indicates a quadratic term in a constraint.
	ErrQuadraticConstraint = errors.New("highs: quadratic constraint not supported")

	// ErrNoVariables indicates Solve was invoked before any variable existed.
	ErrNoVariables = errors.New("highs: model has no variables")

	// ErrNoObjective indicates Solve was invoked before SetObjective.
	ErrNoObjective = errors.New("highs: model has no objective")

	// ErrBadBounds indicates a constraint range with lb above ub.
	ErrBadBounds = errors.New("highs: constraint lower bound exceeds upper bound")
)
