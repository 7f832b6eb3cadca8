// SPDX-License-Identifier: MIT

package highs

import (
	"fmt"
	"io"
	"math"
	"time"

	lanl "github.com/lanl/highs"

	"github.com/samarthmistry/opti-extensions/solver"
	"github.com/samarthmistry/opti-extensions/vardict"
)

// Sense is the objective direction.
type Sense int

const (
	// Minimize the objective.
	Minimize Sense = iota
	// Maximize the objective. HiGHS minimizes natively, so coefficients are
	// negated on the way in and the objective negated on the way out.
	Maximize
)

func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}
	return "minimize"
}

type column struct {
	name   string
	vt     solver.VarType
	lb, ub float64
}

type constraint struct {
	name   string
	lb, ub float64
	expr   *Expr
}

// Model accumulates variables, linear constraints and an objective, then
// hands the whole program to the HiGHS engine on Solve. It implements
// solver.Model[Var], so the vardict constructors drive it directly.
//
// Build-time errors (foreign variables, quadratic constraints, inverted
// bounds) surface on the Add call that causes them; Solve only validates
// whole-model conditions.
type Model struct {
	name     string
	logw     io.Writer
	cols     []column
	cons     []constraint
	sense    Sense
	obj      *Expr
	hasObj   bool
	intCount int
}

// Option customizes a Model at construction.
type Option func(*Model)

// WithLogWriter directs the solve log (model shape, timing, outcome) to w.
// The default discards it.
func WithLogWriter(w io.Writer) Option {
	return func(m *Model) { m.logw = w }
}

// NewModel returns an empty model with the given display name.
func NewModel(name string, opts ...Option) *Model {
	m := &Model{name: name, logw: io.Discard}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the model's display name.
func (m *Model) Name() string { return m.name }

// NumVariables returns the number of columns registered so far.
func (m *Model) NumVariables() int { return len(m.cols) }

// NumConstraints returns the number of rows registered so far.
func (m *Model) NumConstraints() int { return len(m.cons) }

// AddVariable registers one decision variable and returns its handle.
// Binary variables are carried as integer columns with bounds clamped to
// [0, 1], which is how the engine expects them.
func (m *Model) AddVariable(name string, vt solver.VarType, lb, ub float64) (Var, error) {
	switch vt {
	case solver.Continuous, solver.Integer, solver.Binary:
	default:
		return Var{}, fmt.Errorf("%w: %v", ErrUnsupportedVarType, vt)
	}
	if vt == solver.Binary {
		lb = max(lb, 0)
		ub = min(ub, 1)
	}
	if err := solver.CheckBounds(lb, ub); err != nil {
		return Var{}, fmt.Errorf("highs: variable %s: %w", name, err)
	}
	if vt != solver.Continuous {
		m.intCount++
	}
	m.cols = append(m.cols, column{name: name, vt: vt, lb: lb, ub: ub})
	return Var{id: len(m.cols)}, nil
}

// SetObjective installs a linear objective with the given direction,
// replacing any previous objective.
func (m *Model) SetObjective(sense Sense, lin vardict.Linear[Var]) error {
	return m.SetObjectiveExpr(sense, Lin(lin))
}

// SetObjectiveExpr installs an objective expression with the given
// direction, replacing any previous objective. Quadratic terms are accepted
// here but rejected by Solve; the expression form exists so a constant
// offset can ride along.
func (m *Model) SetObjectiveExpr(sense Sense, e *Expr) error {
	if err := m.checkCols(e); err != nil {
		return err
	}
	m.sense = sense
	m.obj = e
	m.hasObj = true
	return nil
}

// AddRange adds the constraint lb <= expr <= ub. The expression's constant
// folds into both bounds.
func (m *Model) AddRange(name string, lb float64, e *Expr, ub float64) error {
	if e.isQuadratic() {
		return fmt.Errorf("%w: %s", ErrQuadraticConstraint, name)
	}
	if err := m.checkCols(e); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	lb -= e.constant
	ub -= e.constant
	if lb > ub {
		return fmt.Errorf("%w: %s [%g, %g]", ErrBadBounds, name, lb, ub)
	}
	m.cons = append(m.cons, constraint{name: name, lb: lb, ub: ub, expr: e})
	return nil
}

// AddLE adds the constraint expr <= rhs.
func (m *Model) AddLE(name string, e *Expr, rhs float64) error {
	return m.AddRange(name, math.Inf(-1), e, rhs)
}

// AddGE adds the constraint expr >= rhs.
func (m *Model) AddGE(name string, e *Expr, rhs float64) error {
	return m.AddRange(name, rhs, e, math.Inf(1))
}

// AddEq adds the constraint expr == rhs.
func (m *Model) AddEq(name string, e *Expr, rhs float64) error {
	return m.AddRange(name, rhs, e, rhs)
}

func (m *Model) checkCols(e *Expr) error {
	if mc := e.maxCol(); mc >= len(m.cols) {
		return fmt.Errorf("%w: column %d of %d", ErrUnknownVariable, mc, len(m.cols))
	}
	return nil
}

// Solve builds the HiGHS program, runs the engine, and returns the outcome.
// A non-optimal status is not an error; check Solution.Optimal.
func (m *Model) Solve() (*Solution, error) {
	if len(m.cols) == 0 {
		return nil, ErrNoVariables
	}
	if !m.hasObj {
		return nil, ErrNoObjective
	}
	if m.obj.isQuadratic() {
		return nil, ErrQuadraticObjective
	}

	lp := m.build()
	nz := len(lp.ConstMatrix)
	fmt.Fprintf(m.logw, "model %s: %d columns (%d integer), %d rows, %d nonzeros, %s\n",
		m.name, len(m.cols), m.intCount, len(m.cons), nz, m.sense)

	start := time.Now()
	raw, err := lp.Solve()
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("highs: solve %s: %w", m.name, err)
	}

	obj := raw.Objective
	if m.sense == Maximize {
		obj = -obj
	}
	obj += m.obj.constant

	sol := &Solution{
		Status:    raw.Status.String(),
		Optimal:   raw.Status == lanl.Optimal,
		Objective: obj,
		primal:    raw.ColumnPrimal,
	}
	fmt.Fprintf(m.logw, "solve %s: status %s, objective %g, %s\n",
		m.name, sol.Status, sol.Objective, elapsed.Round(time.Microsecond))
	return sol, nil
}

// build translates the accumulated model into the binding's column/row form.
func (m *Model) build() *lanl.Model {
	lp := new(lanl.Model)

	n := len(m.cols)
	lp.VarTypes = make([]lanl.VariableType, n)
	lp.ColLower = make([]float64, n)
	lp.ColUpper = make([]float64, n)
	lp.ColCosts = make([]float64, n)
	for j, c := range m.cols {
		if c.vt == solver.Continuous {
			lp.VarTypes[j] = lanl.ContinuousType
		} else {
			lp.VarTypes[j] = lanl.IntegerType
		}
		lp.ColLower[j] = c.lb
		lp.ColUpper[j] = c.ub
	}
	for c, coef := range m.obj.lin {
		if m.sense == Maximize {
			coef = -coef
		}
		lp.ColCosts[c] = coef
	}

	lp.RowLower = make([]float64, len(m.cons))
	lp.RowUpper = make([]float64, len(m.cons))
	for i, con := range m.cons {
		lp.RowLower[i] = con.lb
		lp.RowUpper[i] = con.ub
		for _, c := range con.expr.order {
			coef := con.expr.lin[c]
			if coef == 0 {
				continue
			}
			lp.ConstMatrix = append(lp.ConstMatrix,
				lanl.Nonzero{Row: i, Col: c, Val: coef})
		}
	}
	return lp
}
