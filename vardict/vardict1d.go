// SPDX-License-Identifier: MIT

package vardict

import (
	"fmt"
	"strings"

	"github.com/samarthmistry/opti-extensions/indexset"
	"github.com/samarthmistry/opti-extensions/solver"
)

// VarDict1D is an immutable mapping from scalar keys to decision-variable
// handles, in the key order of the index-set it was built from. Handles are
// owned by the backend model; the dictionary only stores and serves them.
type VarDict1D[K comparable, H any] struct {
	name string
	keys []K
	vals map[K]H
}

// AddVariables1D registers one decision variable per element of set on the
// model and returns the resulting dictionary. Variable names default to
// "<set name>(<key>)"; bounds default to the VarType convention. See the
// Option1D constructors for overrides.
func AddVariables1D[K comparable, H any](
	mdl solver.Model[H],
	set *indexset.IndexSet1D[K],
	vt solver.VarType,
	opts ...Option1D[K],
) (*VarDict1D[K, H], error) {
	if mdl == nil {
		return nil, ErrNilModel
	}
	if set == nil {
		return nil, ErrNilSet
	}
	if set.Len() == 0 {
		return nil, ErrEmptySet
	}

	cfg := settings[K]{base: set.Name()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.base == "" {
		cfg.base = "x"
	}

	d := &VarDict1D[K, H]{
		name: cfg.base,
		keys: set.Elems(),
		vals: make(map[K]H, set.Len()),
	}
	for _, k := range d.keys {
		lb, ub, err := cfg.boundsFor(k, vt)
		if err != nil {
			return nil, fmt.Errorf("vardict: key %v: %w", k, err)
		}
		h, err := mdl.AddVariable(varName(cfg.base, fmt.Sprintf("%v", k)), vt, lb, ub)
		if err != nil {
			return nil, fmt.Errorf("vardict: key %v: %w", k, err)
		}
		d.vals[k] = h
	}
	return d, nil
}

// Wrap1D builds a dictionary from externally created handles, pairing them
// positionally with the elements of set. A length mismatch fails with
// ErrKeyMismatch.
func Wrap1D[K comparable, H any](set *indexset.IndexSet1D[K], handles []H) (*VarDict1D[K, H], error) {
	if set == nil {
		return nil, ErrNilSet
	}
	if set.Len() != len(handles) {
		return nil, fmt.Errorf("%w: %d handles for %d keys",
			ErrKeyMismatch, len(handles), set.Len())
	}
	d := &VarDict1D[K, H]{
		name: set.Name(),
		keys: set.Elems(),
		vals: make(map[K]H, set.Len()),
	}
	for i, k := range d.keys {
		d.vals[k] = handles[i]
	}
	return d, nil
}

// Name returns the dictionary's base name.
func (d *VarDict1D[K, H]) Name() string { return d.name }

// Len returns the number of variables.
func (d *VarDict1D[K, H]) Len() int { return len(d.keys) }

// Has reports whether k has a variable.
func (d *VarDict1D[K, H]) Has(k K) bool {
	_, ok := d.vals[k]
	return ok
}

// Get returns the handle for k, or ErrKeyNotFound.
func (d *VarDict1D[K, H]) Get(k K) (H, error) {
	h, ok := d.vals[k]
	if !ok {
		var zero H
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	return h, nil
}

// Lookup returns the handle for k, or the zero handle when k is absent.
func (d *VarDict1D[K, H]) Lookup(k K) H { return d.vals[k] }

// Keys returns a copy of the keys in their original order.
func (d *VarDict1D[K, H]) Keys() []K {
	cp := make([]K, len(d.keys))
	copy(cp, d.keys)
	return cp
}

// Handles returns the handles in key order.
func (d *VarDict1D[K, H]) Handles() []H {
	out := make([]H, len(d.keys))
	for i, k := range d.keys {
		out[i] = d.vals[k]
	}
	return out
}

// Sum returns the linear expression adding every variable once.
func (d *VarDict1D[K, H]) Sum() Linear[H] {
	return unitSum(d.Handles())
}

// SumSquares returns the quadratic expression adding the square of every
// variable once.
func (d *VarDict1D[K, H]) SumSquares() Quadratic[H] {
	return unitSumSquares(d.Handles())
}

// String renders the dictionary as "VarDict1D(name): [k1 k2 ...]".
func (d *VarDict1D[K, H]) String() string {
	parts := make([]string, len(d.keys))
	for i, k := range d.keys {
		parts[i] = fmt.Sprintf("%v", k)
	}
	return fmt.Sprintf("VarDict1D(%s): [%s]", d.name, strings.Join(parts, " "))
}
