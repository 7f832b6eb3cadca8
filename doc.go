// Package optiextensions is a toolkit of ergonomic, type-checked data
// structures for building mathematical-optimization models in Go:
// index-sets, parameter dictionaries, and decision-variable dictionaries
// layered on a solver-agnostic modeling seam.
//
// What it brings together:
//
//   - Ordered index-sets: duplicate-free, insertion-ordered collections of
//     scalars or fixed-arity tuples, with full set algebra and the six
//     standard set-comparison relations
//   - Accelerated subset selection: N-dim sets and dictionaries maintain a
//     per-dimension secondary index, so wildcard queries like
//     Subset("A", Wildcard) avoid a full scan
//   - Parameter dictionaries: tuple-keyed numeric mappings with ordered
//     iteration and statistical reductions (sum, min, max, mean, median and
//     its low/high tie-break variants)
//   - Variable dictionaries: immutable mappings from index-set keys to
//     solver-owned decision-variable handles, with Sum / SumSquares / Dot
//     expression builders
//   - A concrete backend for the HiGHS solver, plus a capability interface
//     any other solver binding can implement
//   - Tabular adapters: cast columnar data (CSV or in-memory columns) into
//     index-sets and parameter dictionaries
//
// Everything is organized under focused subpackages:
//
//	indexset/  - Tuple, IndexSet1D, IndexSetND & their set algebra
//	paramdict/ - ParamDict1D, ParamDictND & numeric reductions
//	solver/    - the Model capability interface and variable types
//	vardict/   - VarDict1D, VarDictND & the AddVariables constructors
//	highs/     - solver.Model backend over github.com/lanl/highs
//	table/     - Frame: columnar data to index-sets / parameter dictionaries
//
// Quick sketch (transportation flavored):
//
//	origins, _ := indexset.New1D("A", "B")
//	dests, _ := indexset.New1D("X", "Y", "Z")
//	arcs, _ := indexset.ProductND(origins.AnyElems(), dests.AnyElems())
//
//	mdl := highs.NewModel("transport")
//	flow, _ := vardict.AddVariablesND(mdl, arcs, solver.Continuous)
//	mdl.SetObjective(highs.Minimize, vardict.MustDotND(flow, cost))
//
// The containers are single-owner and single-threaded by contract: no locks,
// no goroutines, no hidden global state. Solving itself is delegated to the
// external engine; this module only makes the bookkeeping pleasant.
package optiextensions
