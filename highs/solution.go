// SPDX-License-Identifier: MIT

package highs

import (
	"github.com/samarthmistry/opti-extensions/paramdict"
	"github.com/samarthmistry/opti-extensions/vardict"
)

// Solution is the outcome of one Solve call. Primal values are read through
// the variable handles the model handed out.
type Solution struct {
	// Status is the engine's model status, e.g. "Optimal" or "Infeasible".
	Status string
	// Optimal reports whether the engine proved optimality.
	Optimal bool
	// Objective is the objective value in the model's own sense, including
	// any constant offset.
	Objective float64

	primal []float64
}

// Value returns the primal value of v, or 0 for an invalid handle or a
// solution with no primal (infeasible models).
func (s *Solution) Value(v Var) float64 {
	if !v.Valid() || v.col() >= len(s.primal) {
		return 0
	}
	return s.primal[v.col()]
}

// Values1D extracts the primal values of a 1-D variable dictionary as a
// parameter dictionary with the same keys and order.
func Values1D[K comparable](s *Solution, d *vardict.VarDict1D[K, Var]) *paramdict.ParamDict1D[K, float64] {
	out := paramdict.New1D[K, float64]()
	out.SetName(d.Name())
	for _, k := range d.Keys() {
		out.Set(k, s.Value(d.Lookup(k)))
	}
	return out
}

// ValuesND extracts the primal values of an N-D variable dictionary as a
// parameter dictionary with the same keys and order.
func ValuesND(s *Solution, d *vardict.VarDictND[Var]) (*paramdict.ParamDictND[float64], error) {
	out := paramdict.NewND[float64]()
	out.SetName(d.Name())
	for _, t := range d.Keys() {
		if err := out.Set(t, s.Value(d.Lookup(t))); err != nil {
			return nil, err
		}
	}
	return out, nil
}
