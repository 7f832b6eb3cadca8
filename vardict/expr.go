// SPDX-License-Identifier: MIT

package vardict

import (
	"fmt"

	"github.com/samarthmistry/opti-extensions/paramdict"
)

// Term is one coefficient-weighted variable in a linear expression.
type Term[H any] struct {
	Handle H
	Coef   float64
}

// Linear is a backend-neutral weighted sum of variables. Backends translate
// it into their native expression form; see highs.Model.
type Linear[H any] struct {
	Terms []Term[H]
}

// Quadratic is a backend-neutral weighted sum of squared variables.
type Quadratic[H any] struct {
	Terms []Term[H] // each term contributes Coef * Handle^2
}

func unitSum[H any](handles []H) Linear[H] {
	terms := make([]Term[H], len(handles))
	for i, h := range handles {
		terms[i] = Term[H]{Handle: h, Coef: 1}
	}
	return Linear[H]{Terms: terms}
}

func unitSumSquares[H any](handles []H) Quadratic[H] {
	terms := make([]Term[H], len(handles))
	for i, h := range handles {
		terms[i] = Term[H]{Handle: h, Coef: 1}
	}
	return Quadratic[H]{Terms: terms}
}

// Dot returns the inner product of a 1-D variable dictionary and a parameter
// dictionary: one term per variable key, weighted by the matching parameter.
// Keys absent from the parameter dictionary contribute a zero coefficient
// and are dropped from the expression.
func Dot[K comparable, H any, V paramdict.Real](
	vd *VarDict1D[K, H],
	pd *paramdict.ParamDict1D[K, V],
) (Linear[H], error) {
	if vd == nil {
		return Linear[H]{}, ErrNilSet
	}
	if pd == nil {
		return Linear[H]{}, ErrNilDict
	}
	terms := make([]Term[H], 0, vd.Len())
	for _, k := range vd.keys {
		v, err := pd.Get(k)
		if err != nil {
			continue
		}
		terms = append(terms, Term[H]{Handle: vd.vals[k], Coef: float64(v)})
	}
	return Linear[H]{Terms: terms}, nil
}

// DotND returns the inner product of an N-D variable dictionary and an N-D
// parameter dictionary. Both operands must share one key arity; keys absent
// from the parameter dictionary are dropped, matching Dot.
func DotND[H any, V paramdict.Real](
	vd *VarDictND[H],
	pd *paramdict.ParamDictND[V],
) (Linear[H], error) {
	if vd == nil {
		return Linear[H]{}, ErrNilSet
	}
	if pd == nil {
		return Linear[H]{}, ErrNilDict
	}
	if pd.Len() > 0 && vd.Arity() != pd.Arity() {
		return Linear[H]{}, fmt.Errorf("%w: variables %d vs parameters %d",
			ErrArityMismatch, vd.Arity(), pd.Arity())
	}
	keys := vd.keys.Elems()
	terms := make([]Term[H], 0, len(keys))
	for _, t := range keys {
		v, err := pd.Get(t)
		if err != nil {
			continue
		}
		terms = append(terms, Term[H]{Handle: vd.vals[t.Key()], Coef: float64(v)})
	}
	return Linear[H]{Terms: terms}, nil
}

// MustDot is Dot with a panic on error, for expressions known valid at
// build time.
func MustDot[K comparable, H any, V paramdict.Real](
	vd *VarDict1D[K, H],
	pd *paramdict.ParamDict1D[K, V],
) Linear[H] {
	l, err := Dot(vd, pd)
	if err != nil {
		panic(err)
	}
	return l
}

// MustDotND is DotND with a panic on error, for expressions known valid at
// build time.
func MustDotND[H any, V paramdict.Real](
	vd *VarDictND[H],
	pd *paramdict.ParamDictND[V],
) Linear[H] {
	l, err := DotND(vd, pd)
	if err != nil {
		panic(err)
	}
	return l
}

// Scale returns a copy of l with every coefficient multiplied by f.
func (l Linear[H]) Scale(f float64) Linear[H] {
	terms := make([]Term[H], len(l.Terms))
	for i, t := range l.Terms {
		terms[i] = Term[H]{Handle: t.Handle, Coef: t.Coef * f}
	}
	return Linear[H]{Terms: terms}
}

// Plus returns the concatenation of two linear expressions. Backends merge
// repeated handles when they translate the expression.
func (l Linear[H]) Plus(other Linear[H]) Linear[H] {
	terms := make([]Term[H], 0, len(l.Terms)+len(other.Terms))
	terms = append(terms, l.Terms...)
	terms = append(terms, other.Terms...)
	return Linear[H]{Terms: terms}
}

// Minus returns l plus the negation of other.
func (l Linear[H]) Minus(other Linear[H]) Linear[H] {
	return l.Plus(other.Scale(-1))
}
