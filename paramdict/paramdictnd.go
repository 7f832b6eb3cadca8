// SPDX-License-Identifier: MIT

package paramdict

import (
	"fmt"
	"strings"

	"github.com/samarthmistry/opti-extensions/indexset"
)

// EntryND is one key/value pair for the N-D constructors.
type EntryND[V Real] struct {
	Key   indexset.Tuple
	Value V
}

// ParamDictND maps fixed-arity tuple keys to numeric parameter values. Keys
// live in an embedded IndexSetND, so the dictionary inherits its ordering,
// arity discipline, and accelerated wildcard selection: SubsetKeys,
// SubsetValues, and the pattern forms of the reductions all resolve through
// the per-dimension secondary index.
//
// Lookup of a missing key yields the zero value; use Get when a missing key
// is an error. Instances are single-owner and not safe for concurrent use.
type ParamDictND[V Real] struct {
	name string
	keys *indexset.IndexSetND
	vals map[string]V // canonical tuple key -> value
}

// NewND returns an empty N-D parameter dictionary.
func NewND[V Real]() *ParamDictND[V] {
	keys, _ := indexset.NewND()
	return &ParamDictND[V]{keys: keys, vals: make(map[string]V)}
}

// FromEntriesND builds a dictionary from the given entries, preserving their
// order. All keys must share one arity; a repeated key fails with
// ErrDuplicate.
func FromEntriesND[V Real](entries ...EntryND[V]) (*ParamDictND[V], error) {
	d := NewND[V]()
	for _, e := range entries {
		if err := d.insert(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// FromSetND builds a dictionary keyed by every tuple of set, in the set's
// order, with values produced by fn.
func FromSetND[V Real](set *indexset.IndexSetND, fn func(indexset.Tuple) V) (*ParamDictND[V], error) {
	if set == nil || fn == nil {
		return nil, ErrNilSet
	}
	d := NewND[V]()
	d.name = set.Name()
	for _, t := range set.Elems() {
		if err := d.insert(t, fn(t)); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *ParamDictND[V]) insert(t indexset.Tuple, v V) error {
	if err := d.keys.Append(t); err != nil {
		return fmt.Errorf("paramdict: %w", err)
	}
	d.vals[t.Key()] = v
	return nil
}

// Name returns the user-reference name of the dictionary.
func (d *ParamDictND[V]) Name() string { return d.name }

// SetName assigns a user-reference name to the dictionary.
func (d *ParamDictND[V]) SetName(name string) { d.name = name }

// Len returns the number of entries.
func (d *ParamDictND[V]) Len() int { return d.keys.Len() }

// Arity returns the shared key arity, or 0 while the dictionary is empty.
func (d *ParamDictND[V]) Arity() int { return d.keys.Arity() }

// Has reports whether key t is present.
func (d *ParamDictND[V]) Has(t indexset.Tuple) bool { return d.keys.Contains(t) }

// Get returns the value for t, or ErrKeyNotFound.
func (d *ParamDictND[V]) Get(t indexset.Tuple) (V, error) {
	v, ok := d.vals[t.Key()]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, t)
	}
	return v, nil
}

// Lookup returns the value for t, or 0 when t is absent.
func (d *ParamDictND[V]) Lookup(t indexset.Tuple) V { return d.vals[t.Key()] }

// Set inserts t at the end of the key order, or overwrites its value when t
// is already present. Overwrites touch only the value store; the key order
// and the secondary index are already correct. New keys must match the
// dictionary's arity.
func (d *ParamDictND[V]) Set(t indexset.Tuple, v V) error {
	if d.keys.Contains(t) {
		d.vals[t.Key()] = v
		return nil
	}
	return d.insert(t, v)
}

// SetDefault returns the value for t, first inserting def when t is absent.
// Insertion of a new key follows Set's arity rules.
func (d *ParamDictND[V]) SetDefault(t indexset.Tuple, def V) (V, error) {
	if v, ok := d.vals[t.Key()]; ok {
		return v, nil
	}
	if err := d.insert(t, def); err != nil {
		return 0, err
	}
	return def, nil
}

// Remove deletes key t, preserving the order of other keys.
func (d *ParamDictND[V]) Remove(t indexset.Tuple) error {
	if err := d.keys.Remove(t); err != nil {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, t)
	}
	delete(d.vals, t.Key())
	return nil
}

// Pop removes key t and returns its value.
func (d *ParamDictND[V]) Pop(t indexset.Tuple) (V, error) {
	v, err := d.Get(t)
	if err != nil {
		return 0, err
	}
	return v, d.Remove(t)
}

// PopDefault removes key t and returns its value, or def when t is absent.
func (d *ParamDictND[V]) PopDefault(t indexset.Tuple, def V) V {
	v, err := d.Pop(t)
	if err != nil {
		return def
	}
	return v
}

// PopItem removes and returns the most recently inserted entry.
func (d *ParamDictND[V]) PopItem() (indexset.Tuple, V, error) {
	t, err := d.keys.Pop()
	if err != nil {
		return indexset.Tuple{}, 0, ErrEmptyDict
	}
	v := d.vals[t.Key()]
	delete(d.vals, t.Key())
	return t, v, nil
}

// Clear removes all entries and resets the arity.
func (d *ParamDictND[V]) Clear() {
	d.keys.Clear()
	d.vals = make(map[string]V)
}

// Keys returns a copy of the keys in insertion order.
func (d *ParamDictND[V]) Keys() []indexset.Tuple { return d.keys.Elems() }

// Values returns the values in key order.
func (d *ParamDictND[V]) Values() []V {
	keys := d.keys.Elems()
	out := make([]V, len(keys))
	for i, t := range keys {
		out[i] = d.vals[t.Key()]
	}
	return out
}

// Entries returns the key/value pairs in key order.
func (d *ParamDictND[V]) Entries() []EntryND[V] {
	keys := d.keys.Elems()
	out := make([]EntryND[V], len(keys))
	for i, t := range keys {
		out[i] = EntryND[V]{Key: t, Value: d.vals[t.Key()]}
	}
	return out
}

// KeySet returns a detached copy of the keys as an IndexSetND.
func (d *ParamDictND[V]) KeySet() (*indexset.IndexSetND, error) {
	s, err := indexset.NewND(d.keys.Elems()...)
	if err != nil {
		return nil, err
	}
	s.SetName(d.name)
	return s, nil
}

// SortKeys reorders the keys in place by the given comparison.
func (d *ParamDictND[V]) SortKeys(less func(a, b indexset.Tuple) bool) {
	d.keys.Sort(less)
}

// String renders the dictionary as "ParamDictND(name): {(..): v, ...}".
func (d *ParamDictND[V]) String() string {
	keys := d.keys.Elems()
	parts := make([]string, len(keys))
	for i, t := range keys {
		parts[i] = fmt.Sprintf("%v: %v", t, d.vals[t.Key()])
	}
	body := "{" + strings.Join(parts, ", ") + "}"
	if d.name != "" {
		return fmt.Sprintf("ParamDictND(%s): %s", d.name, body)
	}
	return "ParamDictND: " + body
}

// ---------- pattern selection ----------

// SubsetKeys returns the keys matching a wildcard pattern, in key order.
// Pattern rules follow indexset.IndexSetND.Subset.
func (d *ParamDictND[V]) SubsetKeys(pattern ...any) ([]indexset.Tuple, error) {
	return d.keys.Subset(pattern...)
}

// SubsetValues returns the values whose keys match a wildcard pattern, in key
// order.
func (d *ParamDictND[V]) SubsetValues(pattern ...any) ([]V, error) {
	keys, err := d.keys.Subset(pattern...)
	if err != nil {
		return nil, err
	}
	out := make([]V, len(keys))
	for i, t := range keys {
		out[i] = d.vals[t.Key()]
	}
	return out, nil
}

// SubsetDict returns a new dictionary restricted to the keys matching a
// wildcard pattern, in key order.
func (d *ParamDictND[V]) SubsetDict(pattern ...any) (*ParamDictND[V], error) {
	keys, err := d.keys.Subset(pattern...)
	if err != nil {
		return nil, err
	}
	out := NewND[V]()
	out.name = d.name
	for _, t := range keys {
		if err := out.insert(t, d.vals[t.Key()]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ---------- reshaping ----------

// Squeeze returns a new dictionary with key dimension dim removed. The
// dimension must hold one component value across all keys, otherwise the
// squeezed keys could collide; a varying dimension fails with
// ErrDimNotConstant.
func (d *ParamDictND[V]) Squeeze(dim int) (*ParamDictND[V], error) {
	keys := d.keys.Elems()
	if len(keys) == 0 {
		return nil, ErrEmptyDict
	}
	if dim < 0 || dim >= d.keys.Arity() {
		return nil, ErrDimRange
	}
	first, err := indexset.NewTuple(keys[0].At(dim))
	if err != nil {
		return nil, err
	}
	for _, t := range keys[1:] {
		comp, err := indexset.NewTuple(t.At(dim))
		if err != nil {
			return nil, err
		}
		if !comp.Equal(first) {
			return nil, fmt.Errorf("%w: dimension %d", ErrDimNotConstant, dim)
		}
	}

	dropped, _ := indexset.NewND()
	for _, t := range keys {
		nt, err := t.Drop(dim)
		if err != nil {
			return nil, fmt.Errorf("paramdict: %w", err)
		}
		if err := dropped.Append(nt); err != nil {
			return nil, fmt.Errorf("paramdict: %w", err)
		}
	}
	return d.rekey(dropped)
}

// Squeeze1D removes constant key dimension dim of an arity-2 dictionary and
// returns the result as a 1-D dictionary keyed by the surviving components.
func (d *ParamDictND[V]) Squeeze1D(dim int) (*ParamDict1D[any, V], error) {
	if d.Len() > 0 && d.Arity() != 2 {
		return nil, fmt.Errorf("%w: arity %d, want 2",
			indexset.ErrArityMismatch, d.Arity())
	}
	nd, err := d.Squeeze(dim)
	if err != nil {
		return nil, err
	}
	out := New1D[any, V]()
	out.name = d.name
	for _, e := range nd.Entries() {
		out.Set(e.Key.At(0), e.Value)
	}
	return out, nil
}

// Expand returns a new dictionary with component comp inserted at dimension
// dim of every key. The inverse of Squeeze.
func (d *ParamDictND[V]) Expand(dim int, comp any) (*ParamDictND[V], error) {
	keys := d.keys.Elems()
	if len(keys) == 0 {
		return nil, ErrEmptyDict
	}
	grown, _ := indexset.NewND()
	for _, t := range keys {
		nt, err := t.Insert(dim, comp)
		if err != nil {
			return nil, fmt.Errorf("paramdict: %w", err)
		}
		if err := grown.Append(nt); err != nil {
			return nil, fmt.Errorf("paramdict: %w", err)
		}
	}
	return d.rekey(grown)
}

// rekey pairs d's values with newKeys positionally. Both sequences have the
// same length by construction.
func (d *ParamDictND[V]) rekey(newKeys *indexset.IndexSetND) (*ParamDictND[V], error) {
	old := d.keys.Elems()
	out := NewND[V]()
	out.name = d.name
	for i, nt := range newKeys.Elems() {
		if err := out.insert(nt, d.vals[old[i].Key()]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ---------- reductions ----------
// Each reduction accepts an optional wildcard pattern: with no pattern it
// covers every value, with a pattern it covers the matching subset.

// Sum returns the sum of the covered values; no coverage sums to 0.
func (d *ParamDictND[V]) Sum(pattern ...any) (V, error) {
	vals, err := d.reduceSlice(pattern)
	if err != nil {
		return 0, err
	}
	return sumOf(vals), nil
}

// Min returns the smallest covered value, or ErrEmptyDict.
func (d *ParamDictND[V]) Min(pattern ...any) (V, error) {
	vals, err := d.reduceSlice(pattern)
	if err != nil {
		return 0, err
	}
	return minOf(vals)
}

// Max returns the largest covered value, or ErrEmptyDict.
func (d *ParamDictND[V]) Max(pattern ...any) (V, error) {
	vals, err := d.reduceSlice(pattern)
	if err != nil {
		return 0, err
	}
	return maxOf(vals)
}

// Mean returns the arithmetic mean of the covered values, or ErrEmptyDict.
func (d *ParamDictND[V]) Mean(pattern ...any) (float64, error) {
	vals, err := d.reduceSlice(pattern)
	if err != nil {
		return 0, err
	}
	return meanOf(vals)
}

// Median returns the median of the covered values, averaging the two middle
// values on even counts.
func (d *ParamDictND[V]) Median(pattern ...any) (float64, error) {
	vals, err := d.reduceSlice(pattern)
	if err != nil {
		return 0, err
	}
	return medianOf(vals, medianInterpolate)
}

// MedianLow returns the median, taking the lower middle value on even counts.
func (d *ParamDictND[V]) MedianLow(pattern ...any) (float64, error) {
	vals, err := d.reduceSlice(pattern)
	if err != nil {
		return 0, err
	}
	return medianOf(vals, medianLow)
}

// MedianHigh returns the median, taking the higher middle value on even
// counts.
func (d *ParamDictND[V]) MedianHigh(pattern ...any) (float64, error) {
	vals, err := d.reduceSlice(pattern)
	if err != nil {
		return 0, err
	}
	return medianOf(vals, medianHigh)
}

func (d *ParamDictND[V]) reduceSlice(pattern []any) ([]V, error) {
	if len(pattern) == 0 {
		return d.Values(), nil
	}
	return d.SubsetValues(pattern...)
}
