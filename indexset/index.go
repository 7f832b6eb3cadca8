// SPDX-License-Identifier: MIT

package indexset

import (
	"fmt"
	"sort"
	"strings"
)

// Secondary-index maintenance and the pattern queries built on it.
//
// Invariant: for every member tuple t and dimension d,
// dims[d][enc(t[d])] contains t's canonical key, and no other entry does.
// Buckets are pruned when emptied so ContainsComponent stays accurate.

func (s *IndexSetND) indexAdd(t Tuple) {
	for d, enc := range strings.Split(t.key, keySep) {
		bucket, ok := s.dims[d][enc]
		if !ok {
			bucket = make(map[string]struct{})
			s.dims[d][enc] = bucket
		}
		bucket[t.key] = struct{}{}
	}
}

func (s *IndexSetND) indexRemove(t Tuple) {
	for d, enc := range strings.Split(t.key, keySep) {
		bucket := s.dims[d][enc]
		delete(bucket, t.key)
		if len(bucket) == 0 {
			delete(s.dims[d], enc)
		}
	}
}

// Subset returns the member tuples matching a wildcard pattern, in primary
// order. The pattern supplies one entry per dimension: a scalar pins that
// dimension, Wildcard leaves it free.
//
//	arcs.Subset("A", Wildcard)   // every tuple whose first component is "A"
//
// A pattern with every dimension pinned or every dimension free is rejected
// with ErrBadPattern (use Contains or Elems for those). Queries resolve
// through the per-dimension index: the narrowest pinned dimension supplies
// the candidates and the remaining pinned dimensions filter them.
func (s *IndexSetND) Subset(pattern ...any) ([]Tuple, error) {
	if len(s.elems) == 0 {
		return nil, ErrEmptySet
	}
	if len(pattern) != s.arity {
		return nil, fmt.Errorf("%w: pattern has %d entries, want %d",
			ErrArityMismatch, len(pattern), s.arity)
	}

	type pin struct {
		dim int
		enc string
	}
	var pins []pin
	for d, p := range pattern {
		if _, free := p.(wildcard); free {
			continue
		}
		enc, err := encodeComponent(p)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", d, err)
		}
		pins = append(pins, pin{dim: d, enc: enc})
	}
	if len(pins) == 0 {
		return nil, fmt.Errorf("%w: no dimension pinned", ErrBadPattern)
	}
	if len(pins) == s.arity {
		return nil, fmt.Errorf("%w: every dimension pinned", ErrBadPattern)
	}

	// Drive the scan from the narrowest bucket.
	seed := s.dims[pins[0].dim][pins[0].enc]
	for _, p := range pins[1:] {
		b := s.dims[p.dim][p.enc]
		if len(b) < len(seed) {
			seed = b
		}
	}
	if len(seed) == 0 {
		return nil, nil
	}

	positions := make([]int, 0, len(seed))
candidates:
	for key := range seed {
		for _, p := range pins {
			if _, ok := s.dims[p.dim][p.enc][key]; !ok {
				continue candidates
			}
		}
		positions = append(positions, s.pos[key])
	}
	sort.Ints(positions)

	out := make([]Tuple, len(positions))
	for i, p := range positions {
		out[i] = s.elems[p]
	}
	return out, nil
}

// Squeeze projects the set onto the given dimensions, in the given order,
// deduplicating projected tuples while keeping first-occurrence order.
// Selecting no dimension or every dimension is rejected with ErrBadPattern
// (the latter would be a reordering copy, not a projection).
func (s *IndexSetND) Squeeze(dims ...int) (*IndexSetND, error) {
	if err := s.checkProjection(dims); err != nil {
		return nil, err
	}
	out := &IndexSetND{name: s.name, pos: make(map[string]int, len(s.elems))}
	for _, t := range s.elems {
		p := t.pick(dims)
		if _, dup := out.pos[p.key]; dup {
			continue
		}
		if err := out.Append(p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Squeeze1D projects the set onto one dimension as a 1-D index-set,
// deduplicating while keeping first-occurrence order. Unlike Squeeze it may
// consume the whole arity: an arity-1 set flattens to its components.
//
// Deduplication follows Tuple's width-insensitive component equality, but the
// result compares its any-typed elements with plain ==, so Contains on it is
// width-sensitive: a stored int(1) does not match int64(1). Query with the
// component's original type, or stay in tuple space via Squeeze.
func (s *IndexSetND) Squeeze1D(dim int) (*IndexSet1D[any], error) {
	if len(s.elems) == 0 {
		return nil, ErrEmptySet
	}
	if dim < 0 || dim >= s.arity {
		return nil, fmt.Errorf("%w: dimension %d of arity %d", ErrDimRange, dim, s.arity)
	}
	out := &IndexSet1D[any]{name: s.name, set: make(map[any]struct{})}
	seen := make(map[string]struct{}, len(s.elems))
	for _, t := range s.elems {
		enc, err := encodeComponent(t.comps[dim])
		if err != nil {
			return nil, err
		}
		if _, dup := seen[enc]; dup {
			continue
		}
		seen[enc] = struct{}{}
		out.set[t.comps[dim]] = struct{}{}
		out.elems = append(out.elems, t.comps[dim])
	}
	return out, nil
}

// checkProjection validates a Squeeze dimension selection.
func (s *IndexSetND) checkProjection(dims []int) error {
	if len(s.elems) == 0 {
		return ErrEmptySet
	}
	if len(dims) == 0 {
		return fmt.Errorf("%w: no dimension selected", ErrBadPattern)
	}
	seen := make(map[int]struct{}, len(dims))
	for _, d := range dims {
		if d < 0 || d >= s.arity {
			return fmt.Errorf("%w: dimension %d of arity %d", ErrDimRange, d, s.arity)
		}
		seen[d] = struct{}{}
	}
	if len(seen) == s.arity && len(dims) == s.arity {
		return fmt.Errorf("%w: every dimension selected", ErrBadPattern)
	}
	return nil
}

// WithinProduct reports whether the set is contained in the cartesian product
// of the given per-dimension memberships, without materializing the product.
// One Membership per dimension; IndexSet1D and IndexSetND both qualify.
func (s *IndexSetND) WithinProduct(members ...Membership) (bool, error) {
	if len(s.elems) == 0 {
		return false, ErrEmptySet
	}
	if len(members) != s.arity {
		return false, fmt.Errorf("%w: %d memberships, want %d",
			ErrArityMismatch, len(members), s.arity)
	}
	// One containment probe per distinct component per dimension: any tuple
	// in a bucket serves as the representative for that component value.
	for d, bucket := range s.dims {
		for _, keys := range bucket {
			for key := range keys {
				t := s.elems[s.pos[key]]
				if !members[d].ContainsComponent(t.comps[d]) {
					return false, nil
				}
				break
			}
		}
	}
	return true, nil
}
