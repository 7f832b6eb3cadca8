// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"
	"strings"
)

// VarType enumerates the decision-variable domains every supported engine
// understands.
type VarType int

const (
	// Continuous variables range over the reals within their bounds.
	Continuous VarType = iota
	// Integer variables range over the integers within their bounds.
	Integer
	// Binary variables take the values 0 and 1.
	Binary
	// SemiContinuous variables are either 0 or continuous within their
	// bounds. Not every engine supports them.
	SemiContinuous
	// SemiInteger variables are either 0 or integer within their bounds.
	// Not every engine supports them.
	SemiInteger
)

// String returns the canonical lowercase name of the variable type.
func (vt VarType) String() string {
	switch vt {
	case Continuous:
		return "continuous"
	case Integer:
		return "integer"
	case Binary:
		return "binary"
	case SemiContinuous:
		return "semicontinuous"
	case SemiInteger:
		return "semiinteger"
	default:
		return fmt.Sprintf("VarType(%d)", int(vt))
	}
}

// ParseVarType maps a case-insensitive name to its VarType. Accepts the
// canonical names plus the LP-file shorthands C, I, B, SC and SI.
func ParseVarType(s string) (VarType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "continuous", "c":
		return Continuous, nil
	case "integer", "i":
		return Integer, nil
	case "binary", "b":
		return Binary, nil
	case "semicontinuous", "sc":
		return SemiContinuous, nil
	case "semiinteger", "si":
		return SemiInteger, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVarType, s)
	}
}

// DefaultBounds returns the conventional bounds for a variable type:
// [0, 1] for binary, [0, +inf) for everything else.
func DefaultBounds(vt VarType) (lb, ub float64) {
	if vt == Binary {
		return 0, 1
	}
	return 0, math.Inf(1)
}

// Model is the capability a backend exposes for variable creation. H is the
// backend's variable-handle type; vardict stores the handles and never looks
// inside them.
//
// AddVariable registers one decision variable and returns its handle. The
// backend owns naming collisions, bound normalization for its engine, and
// any deferred flushing; Binary variables arrive with lb/ub already clamped
// to [0, 1].
type Model[H any] interface {
	AddVariable(name string, vt VarType, lb, ub float64) (H, error)
}

// CheckBounds validates a bound pair before it reaches a backend.
func CheckBounds(lb, ub float64) error {
	if lb > ub {
		return fmt.Errorf("%w: [%g, %g]", ErrInfeasibleBounds, lb, ub)
	}
	return nil
}
