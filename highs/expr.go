// SPDX-License-Identifier: MIT

package highs

import (
	"github.com/samarthmistry/opti-extensions/vardict"
)

// Var is the decision-variable handle this backend hands out. The zero Var
// is invalid and never matches a model column; Solution.Value reads it as 0.
type Var struct {
	id int // 1-based column id; 0 means invalid
}

// Valid reports whether the handle came from a model.
func (v Var) Valid() bool { return v.id > 0 }

func (v Var) col() int { return v.id - 1 }

// Expr is a linear-plus-quadratic expression over one model's variables,
// with an additive constant. Repeated variables merge coefficients; the
// column order of first mention is kept so generated rows are deterministic.
type Expr struct {
	lin      map[int]float64
	quad     map[int]float64 // coef per squared column
	order    []int           // linear columns in first-mention order
	qorder   []int
	constant float64
}

// NewExpr returns an empty expression.
func NewExpr() *Expr {
	return &Expr{lin: make(map[int]float64), quad: make(map[int]float64)}
}

// Add accumulates coef * v.
func (e *Expr) Add(v Var, coef float64) *Expr {
	if !v.Valid() {
		return e
	}
	c := v.col()
	if _, seen := e.lin[c]; !seen {
		e.order = append(e.order, c)
	}
	e.lin[c] += coef
	return e
}

// AddSquare accumulates coef * v^2.
func (e *Expr) AddSquare(v Var, coef float64) *Expr {
	if !v.Valid() {
		return e
	}
	c := v.col()
	if _, seen := e.quad[c]; !seen {
		e.qorder = append(e.qorder, c)
	}
	e.quad[c] += coef
	return e
}

// AddConst accumulates an additive constant.
func (e *Expr) AddConst(c float64) *Expr {
	e.constant += c
	return e
}

// AddLinear accumulates every term of a vardict linear expression.
func (e *Expr) AddLinear(l vardict.Linear[Var]) *Expr {
	for _, t := range l.Terms {
		e.Add(t.Handle, t.Coef)
	}
	return e
}

// AddQuadratic accumulates every term of a vardict quadratic expression.
func (e *Expr) AddQuadratic(q vardict.Quadratic[Var]) *Expr {
	for _, t := range q.Terms {
		e.AddSquare(t.Handle, t.Coef)
	}
	return e
}

// Lin wraps a vardict linear expression as an Expr.
func Lin(l vardict.Linear[Var]) *Expr {
	return NewExpr().AddLinear(l)
}

// Quad wraps a vardict quadratic expression as an Expr.
func Quad(q vardict.Quadratic[Var]) *Expr {
	return NewExpr().AddQuadratic(q)
}

// isQuadratic reports whether any squared term with a nonzero coefficient
// remains.
func (e *Expr) isQuadratic() bool {
	for _, c := range e.quad {
		if c != 0 {
			return true
		}
	}
	return false
}

// maxCol returns the largest column the expression touches, or -1.
func (e *Expr) maxCol() int {
	m := -1
	for c := range e.lin {
		if c > m {
			m = c
		}
	}
	for c := range e.quad {
		if c > m {
			m = c
		}
	}
	return m
}
