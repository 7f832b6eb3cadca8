// SPDX-License-Identifier: MIT

package indexset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Tuple is an immutable, fixed-arity sequence of scalar components.
//
// Supported component types: string, bool, every signed/unsigned integer
// width, float32/float64, and time.Time. Two components are considered equal
// by value, not by Go type: int(3), int32(3) and int64(3) all denote the same
// component. time.Time components are compared by instant (monotonic readings
// and locations are ignored).
type Tuple struct {
	comps []any
	key   string
}

// NewTuple builds a Tuple from the given components.
// Returns ErrEmptyTuple for zero components and ErrNonScalar for any
// component outside the supported scalar types.
func NewTuple(comps ...any) (Tuple, error) {
	if len(comps) == 0 {
		return Tuple{}, ErrEmptyTuple
	}
	enc := make([]string, len(comps))
	for i, c := range comps {
		e, err := encodeComponent(c)
		if err != nil {
			return Tuple{}, fmt.Errorf("component %d: %w", i, err)
		}
		enc[i] = e
	}
	cp := make([]any, len(comps))
	copy(cp, comps)
	return Tuple{comps: cp, key: strings.Join(enc, keySep)}, nil
}

// T is the literal-style constructor: T("A", 3) instead of NewTuple with an
// error check. It panics on invalid components, so reserve it for components
// known at compile time.
func T(comps ...any) Tuple {
	t, err := NewTuple(comps...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len reports the arity of the tuple.
func (t Tuple) Len() int { return len(t.comps) }

// At returns the component at dimension index d.
// Panics if d is out of range (programmer error, same as slice indexing).
func (t Tuple) At(d int) any { return t.comps[d] }

// Components returns a copy of all components.
func (t Tuple) Components() []any {
	cp := make([]any, len(t.comps))
	copy(cp, t.comps)
	return cp
}

// Equal reports whether two tuples have the same components by value.
func (t Tuple) Equal(other Tuple) bool { return t.key == other.key }

// Key returns the canonical encoded form of the tuple. It is injective over
// component values and is what the containers use as map-key material.
// The encoding is stable only within a process; do not persist it.
func (t Tuple) Key() string { return t.key }

// String renders the tuple as "(c1, c2, ...)".
func (t Tuple) String() string {
	parts := make([]string, len(t.comps))
	for i, c := range t.comps {
		parts[i] = fmt.Sprintf("%v", c)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Drop returns a new tuple with dimension d removed.
// Returns ErrDimRange for d outside [0, arity) and ErrEmptyTuple when the
// tuple has only one component left.
func (t Tuple) Drop(d int) (Tuple, error) {
	if d < 0 || d >= len(t.comps) {
		return Tuple{}, ErrDimRange
	}
	if len(t.comps) == 1 {
		return Tuple{}, ErrEmptyTuple
	}
	comps := make([]any, 0, len(t.comps)-1)
	comps = append(comps, t.comps[:d]...)
	comps = append(comps, t.comps[d+1:]...)
	return NewTuple(comps...)
}

// Insert returns a new tuple with component c inserted at dimension d.
// d may equal the arity (append position).
func (t Tuple) Insert(d int, c any) (Tuple, error) {
	if d < 0 || d > len(t.comps) {
		return Tuple{}, ErrDimRange
	}
	comps := make([]any, 0, len(t.comps)+1)
	comps = append(comps, t.comps[:d]...)
	comps = append(comps, c)
	comps = append(comps, t.comps[d:]...)
	return NewTuple(comps...)
}

// pick returns a new tuple composed of the components at the given dims.
// Caller guarantees dims are in range and non-empty.
func (t Tuple) pick(dims []int) Tuple {
	comps := make([]any, len(dims))
	for i, d := range dims {
		comps[i] = t.comps[d]
	}
	return T(comps...)
}

// keySep separates encoded components inside a canonical key. Component
// encodings contain only printable ASCII, so the separator cannot collide.
const keySep = "\x1f"

// encodeComponent maps a scalar to its canonical, width-insensitive encoding.
// Returns ErrNonScalar for unsupported types.
func encodeComponent(v any) (string, error) {
	switch c := v.(type) {
	case string:
		return "s" + strconv.Quote(c), nil
	case bool:
		if c {
			return "b1", nil
		}
		return "b0", nil
	case int:
		return "i" + strconv.FormatInt(int64(c), 10), nil
	case int8:
		return "i" + strconv.FormatInt(int64(c), 10), nil
	case int16:
		return "i" + strconv.FormatInt(int64(c), 10), nil
	case int32:
		return "i" + strconv.FormatInt(int64(c), 10), nil
	case int64:
		return "i" + strconv.FormatInt(c, 10), nil
	case uint:
		return encodeUint(uint64(c)), nil
	case uint8:
		return encodeUint(uint64(c)), nil
	case uint16:
		return encodeUint(uint64(c)), nil
	case uint32:
		return encodeUint(uint64(c)), nil
	case uint64:
		return encodeUint(c), nil
	case float32:
		return "f" + strconv.FormatFloat(float64(c), 'g', -1, 64), nil
	case float64:
		return "f" + strconv.FormatFloat(c, 'g', -1, 64), nil
	case time.Time:
		return "t" + strconv.FormatInt(c.UnixNano(), 10), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrNonScalar, v)
	}
}

// encodeUint folds unsigned values into the signed-integer encoding whenever
// they are representable, so uint(3) and int(3) denote the same component.
func encodeUint(u uint64) string {
	if u <= math.MaxInt64 {
		return "i" + strconv.FormatInt(int64(u), 10)
	}
	return "u" + strconv.FormatUint(u, 10)
}
