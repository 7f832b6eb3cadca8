// SPDX-License-Identifier: MIT

// Package vardict provides immutable decision-variable dictionaries: the
// bridge between index-sets and a solver backend. AddVariables1D and
// AddVariablesND register one variable per key on any solver.Model and
// return a read-only mapping from key to handle; Sum, SumSquares, Dot and
// DotND assemble backend-neutral expressions from those handles.
//
//	supply, _ := vardict.AddVariables1D(mdl, plants, solver.Continuous,
//		vardict.WithUpperBoundDict1D(capacity))
//	flow, _ := vardict.AddVariablesND(mdl, arcs, solver.Continuous)
//
//	outOfA, _ := flow.Sum("A", indexset.Wildcard)
//	objective := vardict.MustDotND(flow, cost)
//
// Dictionaries are deliberately immutable after construction: the variables
// already exist on the backend model, so adding or removing keys would
// desynchronize the two.
package vardict
