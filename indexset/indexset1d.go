// SPDX-License-Identifier: MIT

package indexset

import "fmt"

// IndexSet1D is an ordered, duplicate-free sequence of scalar elements.
//
// It behaves as a list (position-indexed access, insertion, removal, sort,
// reverse) layered with set semantics: inserting an element that is already
// present fails with ErrDuplicate, and the six standard set comparisons plus
// the four set-algebra operations are available against other IndexSet1D
// instances of the same element type.
//
// Iteration order is insertion/mutation order, never sorted implicitly.
// Instances are single-owner and not safe for concurrent use.
type IndexSet1D[E comparable] struct {
	name  string
	elems []E
	set   map[E]struct{}
}

// New1D builds an IndexSet1D from the given elements, preserving their order.
// Returns ErrDuplicate if the input repeats an element.
func New1D[E comparable](elems ...E) (*IndexSet1D[E], error) {
	s := &IndexSet1D[E]{set: make(map[E]struct{}, len(elems))}
	for _, e := range elems {
		if _, dup := s.set[e]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicate, e)
		}
		s.set[e] = struct{}{}
		s.elems = append(s.elems, e)
	}
	return s, nil
}

// Name returns the user-reference name of the set (not used internally).
func (s *IndexSet1D[E]) Name() string { return s.name }

// SetName assigns a user-reference name to the set.
func (s *IndexSet1D[E]) SetName(name string) { s.name = name }

// Len returns the number of elements.
func (s *IndexSet1D[E]) Len() int { return len(s.elems) }

// Contains reports membership of e.
func (s *IndexSet1D[E]) Contains(e E) bool {
	_, ok := s.set[e]
	return ok
}

// ContainsComponent reports membership of a dynamically-typed component.
// It satisfies the Membership interface used by IndexSetND.WithinProduct.
func (s *IndexSet1D[E]) ContainsComponent(v any) bool {
	e, ok := v.(E)
	if !ok {
		return false
	}
	return s.Contains(e)
}

// Elems returns a copy of the elements in primary order.
func (s *IndexSet1D[E]) Elems() []E {
	cp := make([]E, len(s.elems))
	copy(cp, s.elems)
	return cp
}

// AnyElems returns the elements in primary order as []any, the form the
// ProductND constructor consumes.
func (s *IndexSet1D[E]) AnyElems() []any {
	out := make([]any, len(s.elems))
	for i, e := range s.elems {
		out[i] = e
	}
	return out
}

// At returns the element at position index i.
func (s *IndexSet1D[E]) At(i int) (E, error) {
	var zero E
	if i < 0 || i >= len(s.elems) {
		return zero, ErrIndexRange
	}
	return s.elems[i], nil
}

// SetAt replaces the element at position index i.
// Replacing with an element already present elsewhere fails with
// ErrDuplicate and leaves the set unchanged.
func (s *IndexSet1D[E]) SetAt(i int, e E) error {
	if i < 0 || i >= len(s.elems) {
		return ErrIndexRange
	}
	old := s.elems[i]
	if e == old {
		return nil
	}
	if _, dup := s.set[e]; dup {
		return fmt.Errorf("%w: %v", ErrDuplicate, e)
	}
	delete(s.set, old)
	s.set[e] = struct{}{}
	s.elems[i] = e
	return nil
}

// Index returns the position index of e, or ErrNotFound.
func (s *IndexSet1D[E]) Index(e E) (int, error) {
	if _, ok := s.set[e]; !ok {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, e)
	}
	for i, x := range s.elems {
		if x == e {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrNotFound, e)
}

// Append adds e to the end of the set.
// Returns ErrDuplicate if e is already present.
func (s *IndexSet1D[E]) Append(e E) error {
	if _, dup := s.set[e]; dup {
		return fmt.Errorf("%w: %v", ErrDuplicate, e)
	}
	s.set[e] = struct{}{}
	s.elems = append(s.elems, e)
	return nil
}

// Extend appends every element of elems, in order. The operation is
// all-or-nothing: any duplicate (against the set or within elems) fails with
// ErrDuplicate and leaves the set unchanged.
func (s *IndexSet1D[E]) Extend(elems ...E) error {
	seen := make(map[E]struct{}, len(elems))
	for _, e := range elems {
		if _, dup := s.set[e]; dup {
			return fmt.Errorf("%w: %v", ErrDuplicate, e)
		}
		if _, dup := seen[e]; dup {
			return fmt.Errorf("%w: %v", ErrDuplicate, e)
		}
		seen[e] = struct{}{}
	}
	for _, e := range elems {
		s.set[e] = struct{}{}
		s.elems = append(s.elems, e)
	}
	return nil
}

// Insert places e at position index i, shifting later elements right.
// i may equal Len (append position).
func (s *IndexSet1D[E]) Insert(i int, e E) error {
	if i < 0 || i > len(s.elems) {
		return ErrIndexRange
	}
	if _, dup := s.set[e]; dup {
		return fmt.Errorf("%w: %v", ErrDuplicate, e)
	}
	s.set[e] = struct{}{}
	s.elems = append(s.elems, e)
	copy(s.elems[i+1:], s.elems[i:])
	s.elems[i] = e
	return nil
}

// Remove deletes e from the set, preserving the order of other elements.
// Returns ErrNotFound if e is not present.
func (s *IndexSet1D[E]) Remove(e E) error {
	i, err := s.Index(e)
	if err != nil {
		return err
	}
	delete(s.set, e)
	s.elems = append(s.elems[:i], s.elems[i+1:]...)
	return nil
}

// Pop removes and returns the last element.
func (s *IndexSet1D[E]) Pop() (E, error) {
	return s.PopAt(len(s.elems) - 1)
}

// PopAt removes and returns the element at position index i.
func (s *IndexSet1D[E]) PopAt(i int) (E, error) {
	var zero E
	if i < 0 || i >= len(s.elems) {
		return zero, ErrIndexRange
	}
	e := s.elems[i]
	delete(s.set, e)
	s.elems = append(s.elems[:i], s.elems[i+1:]...)
	return e, nil
}

// Clear removes all elements.
func (s *IndexSet1D[E]) Clear() {
	s.elems = s.elems[:0]
	s.set = make(map[E]struct{})
}

// Sort orders the elements in place by the given comparison.
// See SortAscending for the common ordered-element case.
func (s *IndexSet1D[E]) Sort(less func(a, b E) bool) {
	sortSlice(s.elems, less)
}

// Reverse reverses the element order in place.
func (s *IndexSet1D[E]) Reverse() {
	for i, j := 0, len(s.elems)-1; i < j; i, j = i+1, j-1 {
		s.elems[i], s.elems[j] = s.elems[j], s.elems[i]
	}
}

// String renders the set as "IndexSet1D(name): [e1 e2 ...]".
func (s *IndexSet1D[E]) String() string {
	if s.name != "" {
		return fmt.Sprintf("IndexSet1D(%s): %v", s.name, s.elems)
	}
	return fmt.Sprintf("IndexSet1D: %v", s.elems)
}

// ---------- set comparisons ----------
// A nil operand is treated as an empty set.

// Equal reports whether both sets contain exactly the same elements,
// regardless of order.
func (s *IndexSet1D[E]) Equal(other *IndexSet1D[E]) bool {
	if other == nil {
		return len(s.elems) == 0
	}
	if len(s.elems) != len(other.elems) {
		return false
	}
	for e := range s.set {
		if _, ok := other.set[e]; !ok {
			return false
		}
	}
	return true
}

// IsSubset reports whether every element of s is in other.
func (s *IndexSet1D[E]) IsSubset(other *IndexSet1D[E]) bool {
	if other == nil {
		return len(s.elems) == 0
	}
	if len(s.elems) > len(other.elems) {
		return false
	}
	for e := range s.set {
		if _, ok := other.set[e]; !ok {
			return false
		}
	}
	return true
}

// IsProperSubset reports whether s is a subset of other and not equal to it.
func (s *IndexSet1D[E]) IsProperSubset(other *IndexSet1D[E]) bool {
	return s.IsSubset(other) && (other != nil && len(s.elems) < len(other.elems))
}

// IsSuperset reports whether every element of other is in s.
func (s *IndexSet1D[E]) IsSuperset(other *IndexSet1D[E]) bool {
	if other == nil {
		return true
	}
	return other.IsSubset(s)
}

// IsProperSuperset reports whether s is a superset of other and not equal.
func (s *IndexSet1D[E]) IsProperSuperset(other *IndexSet1D[E]) bool {
	if other == nil {
		return len(s.elems) > 0
	}
	return other.IsProperSubset(s)
}

// IsDisjoint reports whether the two sets share no elements.
func (s *IndexSet1D[E]) IsDisjoint(other *IndexSet1D[E]) bool {
	if other == nil {
		return true
	}
	small, large := s, other
	if len(large.elems) < len(small.elems) {
		small, large = large, small
	}
	for e := range small.set {
		if _, ok := large.set[e]; ok {
			return false
		}
	}
	return true
}

// ---------- set algebra ----------
// Each operation returns a new set; the left operand's elements come first in
// their original order, and the left operand's name is carried over.

// Union returns a new set with the elements of s followed by the elements of
// other that are not already present.
func (s *IndexSet1D[E]) Union(other *IndexSet1D[E]) *IndexSet1D[E] {
	out := s.clone()
	if other == nil {
		return out
	}
	for _, e := range other.elems {
		if _, dup := out.set[e]; !dup {
			out.set[e] = struct{}{}
			out.elems = append(out.elems, e)
		}
	}
	return out
}

// Intersect returns a new set with the elements of s that are also in other,
// in s's order.
func (s *IndexSet1D[E]) Intersect(other *IndexSet1D[E]) *IndexSet1D[E] {
	out := &IndexSet1D[E]{name: s.name, set: make(map[E]struct{})}
	if other == nil {
		return out
	}
	for _, e := range s.elems {
		if _, ok := other.set[e]; ok {
			out.set[e] = struct{}{}
			out.elems = append(out.elems, e)
		}
	}
	return out
}

// Difference returns a new set with the elements of s that are not in other,
// in s's order.
func (s *IndexSet1D[E]) Difference(other *IndexSet1D[E]) *IndexSet1D[E] {
	out := &IndexSet1D[E]{name: s.name, set: make(map[E]struct{})}
	for _, e := range s.elems {
		if other != nil {
			if _, ok := other.set[e]; ok {
				continue
			}
		}
		out.set[e] = struct{}{}
		out.elems = append(out.elems, e)
	}
	return out
}

// SymmetricDifference returns a new set with the elements present in exactly
// one operand: s-only elements in s's order, then other-only elements in
// other's order.
func (s *IndexSet1D[E]) SymmetricDifference(other *IndexSet1D[E]) *IndexSet1D[E] {
	out := s.Difference(other)
	if other == nil {
		return out
	}
	for _, e := range other.elems {
		if _, ok := s.set[e]; !ok {
			out.set[e] = struct{}{}
			out.elems = append(out.elems, e)
		}
	}
	return out
}

func (s *IndexSet1D[E]) clone() *IndexSet1D[E] {
	out := &IndexSet1D[E]{
		name:  s.name,
		elems: make([]E, len(s.elems)),
		set:   make(map[E]struct{}, len(s.set)),
	}
	copy(out.elems, s.elems)
	for e := range s.set {
		out.set[e] = struct{}{}
	}
	return out
}
