// SPDX-License-Identifier: MIT

package indexset

import (
	"fmt"
	"strings"
)

// Membership is the read-only containment capability IndexSetND.WithinProduct
// checks each dimension against. IndexSet1D satisfies it for any element type.
type Membership interface {
	ContainsComponent(v any) bool
}

// Wildcard is the pattern placeholder accepted by Subset: a dimension bound
// to Wildcard matches every component value.
var Wildcard wildcard

type wildcard struct{}

func (wildcard) String() string { return "*" }

// IndexSetND is an ordered, duplicate-free sequence of fixed-arity tuples.
//
// All member tuples share one arity, established by the first tuple added and
// reset to "undetermined" when the set becomes empty. Besides the sequence and
// set operations mirroring IndexSet1D, the set maintains a per-dimension
// secondary index so Subset pattern queries touch only the candidate tuples
// for the narrowest fixed dimension instead of scanning the whole set.
//
// Instances are single-owner and not safe for concurrent use.
type IndexSetND struct {
	name  string
	arity int
	elems []Tuple
	pos   map[string]int // canonical key -> position in elems
	// dims[d] maps an encoded component at dimension d to the canonical keys
	// of the member tuples carrying it.
	dims []map[string]map[string]struct{}
}

// NewND builds an IndexSetND from the given tuples, preserving their order.
// All tuples must share one arity; duplicates fail with ErrDuplicate.
func NewND(tuples ...Tuple) (*IndexSetND, error) {
	s := &IndexSetND{pos: make(map[string]int, len(tuples))}
	for _, t := range tuples {
		if err := s.Append(t); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ProductND builds an IndexSetND holding the cartesian product of the given
// per-dimension component slices, in row-major order (last dimension varies
// fastest). Use IndexSet1D.AnyElems to feed existing sets in.
func ProductND(dims ...[]any) (*IndexSetND, error) {
	if len(dims) == 0 {
		return nil, ErrEmptyTuple
	}
	for d, comps := range dims {
		if len(comps) == 0 {
			return nil, fmt.Errorf("%w: dimension %d has no components", ErrEmptySet, d)
		}
	}
	s := &IndexSetND{pos: make(map[string]int)}
	comps := make([]any, len(dims))
	var walk func(d int) error
	walk = func(d int) error {
		if d == len(dims) {
			t, err := NewTuple(comps...)
			if err != nil {
				return err
			}
			return s.Append(t)
		}
		for _, c := range dims[d] {
			comps[d] = c
			if err := walk(d + 1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(0); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the user-reference name of the set (not used internally).
func (s *IndexSetND) Name() string { return s.name }

// SetName assigns a user-reference name to the set.
func (s *IndexSetND) SetName(name string) { s.name = name }

// Len returns the number of member tuples.
func (s *IndexSetND) Len() int { return len(s.elems) }

// Arity returns the shared tuple arity, or 0 while the set is empty.
func (s *IndexSetND) Arity() int { return s.arity }

// Contains reports membership of t.
func (s *IndexSetND) Contains(t Tuple) bool {
	_, ok := s.pos[t.key]
	return ok
}

// ContainsComponent reports whether any member tuple carries v in any
// dimension. It satisfies Membership so ND sets compose under WithinProduct.
func (s *IndexSetND) ContainsComponent(v any) bool {
	enc, err := encodeComponent(v)
	if err != nil {
		return false
	}
	for _, bucket := range s.dims {
		if keys, ok := bucket[enc]; ok && len(keys) > 0 {
			return true
		}
	}
	return false
}

// Elems returns a copy of the member tuples in primary order.
func (s *IndexSetND) Elems() []Tuple {
	cp := make([]Tuple, len(s.elems))
	copy(cp, s.elems)
	return cp
}

// At returns the tuple at position index i.
func (s *IndexSetND) At(i int) (Tuple, error) {
	if i < 0 || i >= len(s.elems) {
		return Tuple{}, ErrIndexRange
	}
	return s.elems[i], nil
}

// Index returns the position index of t, or ErrNotFound.
func (s *IndexSetND) Index(t Tuple) (int, error) {
	i, ok := s.pos[t.key]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, t)
	}
	return i, nil
}

// Append adds t to the end of the set.
// The first tuple fixes the set's arity; later tuples must match it.
func (s *IndexSetND) Append(t Tuple) error {
	if err := s.admit(t); err != nil {
		return err
	}
	s.pos[t.key] = len(s.elems)
	s.elems = append(s.elems, t)
	s.indexAdd(t)
	return nil
}

// Extend appends every tuple, in order. All-or-nothing: any arity mismatch or
// duplicate leaves the set unchanged.
func (s *IndexSetND) Extend(tuples ...Tuple) error {
	arity := s.arity
	seen := make(map[string]struct{}, len(tuples))
	for _, t := range tuples {
		if t.Len() == 0 {
			return ErrEmptyTuple
		}
		if arity == 0 {
			arity = t.Len()
		}
		if t.Len() != arity {
			return fmt.Errorf("%w: tuple %v has arity %d, want %d",
				ErrArityMismatch, t, t.Len(), arity)
		}
		if _, dup := s.pos[t.key]; dup {
			return fmt.Errorf("%w: %v", ErrDuplicate, t)
		}
		if _, dup := seen[t.key]; dup {
			return fmt.Errorf("%w: %v", ErrDuplicate, t)
		}
		seen[t.key] = struct{}{}
	}
	for _, t := range tuples {
		_ = s.Append(t)
	}
	return nil
}

// Insert places t at position index i, shifting later tuples right.
func (s *IndexSetND) Insert(i int, t Tuple) error {
	if i < 0 || i > len(s.elems) {
		return ErrIndexRange
	}
	if err := s.admit(t); err != nil {
		return err
	}
	s.elems = append(s.elems, Tuple{})
	copy(s.elems[i+1:], s.elems[i:])
	s.elems[i] = t
	for j := i; j < len(s.elems); j++ {
		s.pos[s.elems[j].key] = j
	}
	s.indexAdd(t)
	return nil
}

// SetAt replaces the tuple at position index i.
func (s *IndexSetND) SetAt(i int, t Tuple) error {
	if i < 0 || i >= len(s.elems) {
		return ErrIndexRange
	}
	old := s.elems[i]
	if t.key == old.key {
		return nil
	}
	if t.Len() != s.arity {
		return fmt.Errorf("%w: tuple %v has arity %d, want %d",
			ErrArityMismatch, t, t.Len(), s.arity)
	}
	if _, dup := s.pos[t.key]; dup {
		return fmt.Errorf("%w: %v", ErrDuplicate, t)
	}
	s.indexRemove(old)
	delete(s.pos, old.key)
	s.elems[i] = t
	s.pos[t.key] = i
	s.indexAdd(t)
	return nil
}

// Remove deletes t from the set, preserving the order of other tuples.
func (s *IndexSetND) Remove(t Tuple) error {
	i, ok := s.pos[t.key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, t)
	}
	_, err := s.PopAt(i)
	return err
}

// Pop removes and returns the last tuple.
func (s *IndexSetND) Pop() (Tuple, error) {
	return s.PopAt(len(s.elems) - 1)
}

// PopAt removes and returns the tuple at position index i.
// Emptying the set resets its arity to 0.
func (s *IndexSetND) PopAt(i int) (Tuple, error) {
	if i < 0 || i >= len(s.elems) {
		return Tuple{}, ErrIndexRange
	}
	t := s.elems[i]
	s.indexRemove(t)
	delete(s.pos, t.key)
	s.elems = append(s.elems[:i], s.elems[i+1:]...)
	for j := i; j < len(s.elems); j++ {
		s.pos[s.elems[j].key] = j
	}
	if len(s.elems) == 0 {
		s.arity = 0
		s.dims = nil
	}
	return t, nil
}

// Clear removes all tuples and resets the arity to 0.
func (s *IndexSetND) Clear() {
	s.elems = s.elems[:0]
	s.pos = make(map[string]int)
	s.dims = nil
	s.arity = 0
}

// Sort orders the tuples in place by the given comparison.
func (s *IndexSetND) Sort(less func(a, b Tuple) bool) {
	sortSlice(s.elems, less)
	for i, t := range s.elems {
		s.pos[t.key] = i
	}
}

// Reverse reverses the tuple order in place.
func (s *IndexSetND) Reverse() {
	for i, j := 0, len(s.elems)-1; i < j; i, j = i+1, j-1 {
		s.elems[i], s.elems[j] = s.elems[j], s.elems[i]
		s.pos[s.elems[i].key] = i
		s.pos[s.elems[j].key] = j
	}
}

// String renders the set as "IndexSetND(name): [(..) (..)]".
func (s *IndexSetND) String() string {
	parts := make([]string, len(s.elems))
	for i, t := range s.elems {
		parts[i] = t.String()
	}
	body := "[" + strings.Join(parts, " ") + "]"
	if s.name != "" {
		return fmt.Sprintf("IndexSetND(%s): %s", s.name, body)
	}
	return "IndexSetND: " + body
}

// admit validates t for insertion: non-empty, arity-compatible, not present.
// The first admitted tuple fixes the set's arity and allocates the index.
func (s *IndexSetND) admit(t Tuple) error {
	if t.Len() == 0 {
		return ErrEmptyTuple
	}
	if s.arity == 0 {
		s.arity = t.Len()
		s.dims = make([]map[string]map[string]struct{}, s.arity)
		for d := range s.dims {
			s.dims[d] = make(map[string]map[string]struct{})
		}
	}
	if t.Len() != s.arity {
		return fmt.Errorf("%w: tuple %v has arity %d, want %d",
			ErrArityMismatch, t, t.Len(), s.arity)
	}
	if _, dup := s.pos[t.key]; dup {
		return fmt.Errorf("%w: %v", ErrDuplicate, t)
	}
	return nil
}

// ---------- set comparisons ----------
// A nil operand is treated as an empty set. Arity never affects comparisons:
// two sets of different arity simply share no tuples.

// Equal reports whether both sets contain exactly the same tuples,
// regardless of order.
func (s *IndexSetND) Equal(other *IndexSetND) bool {
	if other == nil {
		return len(s.elems) == 0
	}
	if len(s.elems) != len(other.elems) {
		return false
	}
	for k := range s.pos {
		if _, ok := other.pos[k]; !ok {
			return false
		}
	}
	return true
}

// IsSubset reports whether every tuple of s is in other.
func (s *IndexSetND) IsSubset(other *IndexSetND) bool {
	if other == nil {
		return len(s.elems) == 0
	}
	if len(s.elems) > len(other.elems) {
		return false
	}
	for k := range s.pos {
		if _, ok := other.pos[k]; !ok {
			return false
		}
	}
	return true
}

// IsProperSubset reports whether s is a subset of other and not equal to it.
func (s *IndexSetND) IsProperSubset(other *IndexSetND) bool {
	return s.IsSubset(other) && (other != nil && len(s.elems) < len(other.elems))
}

// IsSuperset reports whether every tuple of other is in s.
func (s *IndexSetND) IsSuperset(other *IndexSetND) bool {
	if other == nil {
		return true
	}
	return other.IsSubset(s)
}

// IsProperSuperset reports whether s is a superset of other and not equal.
func (s *IndexSetND) IsProperSuperset(other *IndexSetND) bool {
	if other == nil {
		return len(s.elems) > 0
	}
	return other.IsProperSubset(s)
}

// IsDisjoint reports whether the two sets share no tuples.
func (s *IndexSetND) IsDisjoint(other *IndexSetND) bool {
	if other == nil {
		return true
	}
	small, large := s, other
	if len(large.elems) < len(small.elems) {
		small, large = large, small
	}
	for k := range small.pos {
		if _, ok := large.pos[k]; ok {
			return false
		}
	}
	return true
}

// ---------- set algebra ----------
// Each operation returns a new set; the left operand's tuples come first in
// their original order, and the left operand's name is carried over.
// Operands must agree on arity unless one of them is empty.

// Union returns a new set with the tuples of s followed by the tuples of
// other that are not already present.
func (s *IndexSetND) Union(other *IndexSetND) (*IndexSetND, error) {
	if err := s.algebraArity(other); err != nil {
		return nil, err
	}
	out, _ := NewND(s.elems...)
	out.name = s.name
	if other == nil {
		return out, nil
	}
	for _, t := range other.elems {
		if _, dup := out.pos[t.key]; !dup {
			_ = out.Append(t)
		}
	}
	return out, nil
}

// Intersect returns a new set with the tuples of s that are also in other,
// in s's order.
func (s *IndexSetND) Intersect(other *IndexSetND) (*IndexSetND, error) {
	if err := s.algebraArity(other); err != nil {
		return nil, err
	}
	out := &IndexSetND{name: s.name, pos: make(map[string]int)}
	if other == nil {
		return out, nil
	}
	for _, t := range s.elems {
		if _, ok := other.pos[t.key]; ok {
			_ = out.Append(t)
		}
	}
	return out, nil
}

// Difference returns a new set with the tuples of s that are not in other,
// in s's order.
func (s *IndexSetND) Difference(other *IndexSetND) (*IndexSetND, error) {
	if err := s.algebraArity(other); err != nil {
		return nil, err
	}
	out := &IndexSetND{name: s.name, pos: make(map[string]int)}
	for _, t := range s.elems {
		if other != nil {
			if _, ok := other.pos[t.key]; ok {
				continue
			}
		}
		_ = out.Append(t)
	}
	return out, nil
}

// SymmetricDifference returns a new set with the tuples present in exactly
// one operand: s-only tuples in s's order, then other-only tuples in other's
// order.
func (s *IndexSetND) SymmetricDifference(other *IndexSetND) (*IndexSetND, error) {
	out, err := s.Difference(other)
	if err != nil {
		return nil, err
	}
	if other == nil {
		return out, nil
	}
	for _, t := range other.elems {
		if _, ok := s.pos[t.key]; !ok {
			_ = out.Append(t)
		}
	}
	return out, nil
}

func (s *IndexSetND) algebraArity(other *IndexSetND) error {
	if other == nil || other.arity == 0 || s.arity == 0 {
		return nil
	}
	if s.arity != other.arity {
		return fmt.Errorf("%w: arity %d vs %d", ErrArityMismatch, s.arity, other.arity)
	}
	return nil
}
