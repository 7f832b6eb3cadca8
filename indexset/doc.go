// SPDX-License-Identifier: MIT

// Package indexset provides ordered, duplicate-free index collections for
// optimization models: IndexSet1D for scalar elements, IndexSetND for
// fixed-arity tuples, and the Tuple value type they share.
//
// Core properties:
//
//   - Primary order is insertion/mutation order; nothing sorts implicitly.
//   - Duplicates are rejected with ErrDuplicate, never silently dropped.
//   - Tuple components compare by value across numeric widths, so T(1, "x")
//     and T(int64(1), "x") denote the same member.
//   - IndexSetND keeps a per-dimension secondary index, making wildcard
//     queries like Subset("A", Wildcard) proportional to the matching
//     bucket instead of the whole set.
//
// Construction:
//
//	plants, err := indexset.New1D("ATL", "CHI", "NYC")
//	arcs, err := indexset.NewND(
//		indexset.T("ATL", "CHI"),
//		indexset.T("ATL", "NYC"),
//	)
//	grid, err := indexset.ProductND(plants.AnyElems(), periods.AnyElems())
//
// All containers are single-owner: no internal locking, no goroutines.
package indexset
