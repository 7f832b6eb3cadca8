// SPDX-License-Identifier: MIT

package indexset

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// SortAscending orders the set's elements in place by natural order.
// It is a free function because natural order needs constraints.Ordered,
// which IndexSet1D's element parameter does not carry.
func SortAscending[E constraints.Ordered](s *IndexSet1D[E]) {
	s.Sort(func(a, b E) bool { return a < b })
}

// SortDescending orders the set's elements in place by reverse natural order.
func SortDescending[E constraints.Ordered](s *IndexSet1D[E]) {
	s.Sort(func(a, b E) bool { return b < a })
}

func sortSlice[E any](elems []E, less func(a, b E) bool) {
	sort.SliceStable(elems, func(i, j int) bool { return less(elems[i], elems[j]) })
}
