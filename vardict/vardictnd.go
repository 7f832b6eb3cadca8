// SPDX-License-Identifier: MIT

package vardict

import (
	"fmt"
	"strings"

	"github.com/samarthmistry/opti-extensions/indexset"
	"github.com/samarthmistry/opti-extensions/solver"
)

// VarDictND is an immutable mapping from tuple keys to decision-variable
// handles, in the key order of the index-set it was built from. The key set
// is copied at construction, so later mutation of the source set never
// touches the dictionary, and the copy's secondary index serves the Sum
// pattern form.
type VarDictND[H any] struct {
	name string
	keys *indexset.IndexSetND
	vals map[string]H // canonical tuple key -> handle
}

// AddVariablesND registers one decision variable per tuple of set on the
// model and returns the resulting dictionary. Variable names default to
// "<set name>(<c1>,<c2>,...)"; bounds default to the VarType convention. See
// the OptionND constructors for overrides.
func AddVariablesND[H any](
	mdl solver.Model[H],
	set *indexset.IndexSetND,
	vt solver.VarType,
	opts ...OptionND,
) (*VarDictND[H], error) {
	if mdl == nil {
		return nil, ErrNilModel
	}
	if set == nil {
		return nil, ErrNilSet
	}
	if set.Len() == 0 {
		return nil, ErrEmptySet
	}

	cfg := settings[string]{base: set.Name()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.base == "" {
		cfg.base = "x"
	}

	keys, err := indexset.NewND(set.Elems()...)
	if err != nil {
		return nil, fmt.Errorf("vardict: %w", err)
	}
	d := &VarDictND[H]{
		name: cfg.base,
		keys: keys,
		vals: make(map[string]H, set.Len()),
	}
	for _, t := range keys.Elems() {
		lb, ub, err := cfg.boundsFor(t.Key(), vt)
		if err != nil {
			return nil, fmt.Errorf("vardict: key %v: %w", t, err)
		}
		h, err := mdl.AddVariable(varName(cfg.base, tupleLabel(t)), vt, lb, ub)
		if err != nil {
			return nil, fmt.Errorf("vardict: key %v: %w", t, err)
		}
		d.vals[t.Key()] = h
	}
	return d, nil
}

// WrapND builds a dictionary from externally created handles, pairing them
// positionally with the tuples of set. A length mismatch fails with
// ErrKeyMismatch.
func WrapND[H any](set *indexset.IndexSetND, handles []H) (*VarDictND[H], error) {
	if set == nil {
		return nil, ErrNilSet
	}
	if set.Len() != len(handles) {
		return nil, fmt.Errorf("%w: %d handles for %d keys",
			ErrKeyMismatch, len(handles), set.Len())
	}
	keys, err := indexset.NewND(set.Elems()...)
	if err != nil {
		return nil, fmt.Errorf("vardict: %w", err)
	}
	d := &VarDictND[H]{
		name: set.Name(),
		keys: keys,
		vals: make(map[string]H, set.Len()),
	}
	for i, t := range keys.Elems() {
		d.vals[t.Key()] = handles[i]
	}
	return d, nil
}

// Name returns the dictionary's base name.
func (d *VarDictND[H]) Name() string { return d.name }

// Len returns the number of variables.
func (d *VarDictND[H]) Len() int { return d.keys.Len() }

// Arity returns the shared key arity.
func (d *VarDictND[H]) Arity() int { return d.keys.Arity() }

// Has reports whether key t has a variable.
func (d *VarDictND[H]) Has(t indexset.Tuple) bool { return d.keys.Contains(t) }

// Get returns the handle for t, or ErrKeyNotFound.
func (d *VarDictND[H]) Get(t indexset.Tuple) (H, error) {
	h, ok := d.vals[t.Key()]
	if !ok {
		var zero H
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, t)
	}
	return h, nil
}

// Lookup returns the handle for t, or the zero handle when t is absent.
func (d *VarDictND[H]) Lookup(t indexset.Tuple) H { return d.vals[t.Key()] }

// Keys returns a copy of the keys in their original order.
func (d *VarDictND[H]) Keys() []indexset.Tuple { return d.keys.Elems() }

// Handles returns the handles in key order.
func (d *VarDictND[H]) Handles() []H {
	keys := d.keys.Elems()
	out := make([]H, len(keys))
	for i, t := range keys {
		out[i] = d.vals[t.Key()]
	}
	return out
}

// SubsetKeys returns the keys matching a wildcard pattern, in key order.
// Pattern rules follow indexset.IndexSetND.Subset.
func (d *VarDictND[H]) SubsetKeys(pattern ...any) ([]indexset.Tuple, error) {
	return d.keys.Subset(pattern...)
}

// Sum returns the linear expression adding each covered variable once: every
// variable with no pattern, the matching subset with one. This is the
// workhorse for balance constraints, e.g. Sum("A", indexset.Wildcard) for
// all flow leaving node A.
func (d *VarDictND[H]) Sum(pattern ...any) (Linear[H], error) {
	handles, err := d.coveredHandles(pattern)
	if err != nil {
		return Linear[H]{}, err
	}
	return unitSum(handles), nil
}

// SumSquares returns the quadratic expression adding the square of each
// covered variable once; pattern coverage follows Sum.
func (d *VarDictND[H]) SumSquares(pattern ...any) (Quadratic[H], error) {
	handles, err := d.coveredHandles(pattern)
	if err != nil {
		return Quadratic[H]{}, err
	}
	return unitSumSquares(handles), nil
}

func (d *VarDictND[H]) coveredHandles(pattern []any) ([]H, error) {
	if len(pattern) == 0 {
		return d.Handles(), nil
	}
	keys, err := d.keys.Subset(pattern...)
	if err != nil {
		return nil, err
	}
	out := make([]H, len(keys))
	for i, t := range keys {
		out[i] = d.vals[t.Key()]
	}
	return out, nil
}

// String renders the dictionary as "VarDictND(name): [(..) (..)]".
func (d *VarDictND[H]) String() string {
	keys := d.keys.Elems()
	parts := make([]string, len(keys))
	for i, t := range keys {
		parts[i] = t.String()
	}
	return fmt.Sprintf("VarDictND(%s): [%s]", d.name, strings.Join(parts, " "))
}
