// SPDX-License-Identifier: MIT

// Package highs is the bundled solver backend, wrapping the HiGHS engine via
// github.com/lanl/highs. Model implements solver.Model[Var], so the vardict
// constructors can populate it directly; constraints and the objective are
// assembled from vardict expressions or the richer Expr builder.
//
//	mdl := highs.NewModel("transport", highs.WithLogWriter(os.Stderr))
//	flow, _ := vardict.AddVariablesND(mdl, arcs, solver.Continuous)
//
//	for _, p := range plants.Elems() {
//		out, _ := flow.Sum(p, indexset.Wildcard)
//		_ = mdl.AddLE("cap_"+p, highs.Lin(out), capacity.Lookup(p))
//	}
//	_ = mdl.SetObjective(highs.Minimize, vardict.MustDotND(flow, cost))
//
//	sol, err := mdl.Solve()
//	shipped := sol.Value(flow.Lookup(indexset.T("ATL", "NYC")))
//
// The engine handles linear programs and mixed-integer programs; quadratic
// terms are accepted while building expressions (SumSquares) but rejected at
// Solve, so a model can be assembled once and pointed at a richer backend
// later. Solving requires the native HiGHS library that the binding links
// against.
package highs
