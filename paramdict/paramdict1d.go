// SPDX-License-Identifier: MIT

package paramdict

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samarthmistry/opti-extensions/indexset"
)

// Entry1D is one key/value pair for the 1-D constructors.
type Entry1D[K comparable, V Real] struct {
	Key   K
	Value V
}

// ParamDict1D maps scalar keys to numeric parameter values, preserving the
// order keys were first set in. Lookup of a missing key yields the zero value,
// the convention modeling code relies on for sparse data; use Get when a
// missing key is an error.
//
// Instances are single-owner and not safe for concurrent use.
type ParamDict1D[K comparable, V Real] struct {
	name string
	keys []K
	vals map[K]V
}

// New1D returns an empty 1-D parameter dictionary.
func New1D[K comparable, V Real]() *ParamDict1D[K, V] {
	return &ParamDict1D[K, V]{vals: make(map[K]V)}
}

// FromEntries1D builds a dictionary from the given entries, preserving their
// order. A repeated key fails with ErrDuplicate.
func FromEntries1D[K comparable, V Real](entries ...Entry1D[K, V]) (*ParamDict1D[K, V], error) {
	d := New1D[K, V]()
	for _, e := range entries {
		if _, dup := d.vals[e.Key]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicate, e.Key)
		}
		d.keys = append(d.keys, e.Key)
		d.vals[e.Key] = e.Value
	}
	return d, nil
}

// FromSet1D builds a dictionary keyed by every element of set, in the set's
// order, with values produced by fn.
func FromSet1D[K comparable, V Real](set *indexset.IndexSet1D[K], fn func(K) V) (*ParamDict1D[K, V], error) {
	if set == nil || fn == nil {
		return nil, ErrNilSet
	}
	d := New1D[K, V]()
	d.name = set.Name()
	for _, k := range set.Elems() {
		d.keys = append(d.keys, k)
		d.vals[k] = fn(k)
	}
	return d, nil
}

// Fill returns a value producer for FromSet constructors that maps every key
// to the same value.
func Fill[K any, V Real](v V) func(K) V {
	return func(K) V { return v }
}

// Name returns the user-reference name of the dictionary.
func (d *ParamDict1D[K, V]) Name() string { return d.name }

// SetName assigns a user-reference name to the dictionary.
func (d *ParamDict1D[K, V]) SetName(name string) { d.name = name }

// Len returns the number of entries.
func (d *ParamDict1D[K, V]) Len() int { return len(d.keys) }

// Has reports whether k is present.
func (d *ParamDict1D[K, V]) Has(k K) bool {
	_, ok := d.vals[k]
	return ok
}

// Get returns the value for k, or ErrKeyNotFound.
func (d *ParamDict1D[K, V]) Get(k K) (V, error) {
	v, ok := d.vals[k]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	return v, nil
}

// Lookup returns the value for k, or 0 when k is absent.
func (d *ParamDict1D[K, V]) Lookup(k K) V { return d.vals[k] }

// Set inserts k at the end of the key order, or overwrites its value when k
// is already present (key order is unchanged on overwrite).
func (d *ParamDict1D[K, V]) Set(k K, v V) {
	if _, ok := d.vals[k]; !ok {
		d.keys = append(d.keys, k)
	}
	d.vals[k] = v
}

// SetDefault returns the value for k, first inserting def when k is absent.
func (d *ParamDict1D[K, V]) SetDefault(k K, def V) V {
	if v, ok := d.vals[k]; ok {
		return v
	}
	d.Set(k, def)
	return def
}

// Remove deletes k, preserving the order of other keys.
func (d *ParamDict1D[K, V]) Remove(k K) error {
	if _, ok := d.vals[k]; !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	delete(d.vals, k)
	for i, x := range d.keys {
		if x == k {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return nil
}

// Pop removes k and returns its value.
func (d *ParamDict1D[K, V]) Pop(k K) (V, error) {
	v, err := d.Get(k)
	if err != nil {
		return 0, err
	}
	return v, d.Remove(k)
}

// PopDefault removes k and returns its value, or def when k is absent.
func (d *ParamDict1D[K, V]) PopDefault(k K, def V) V {
	v, err := d.Pop(k)
	if err != nil {
		return def
	}
	return v
}

// PopItem removes and returns the most recently inserted entry.
func (d *ParamDict1D[K, V]) PopItem() (K, V, error) {
	var zk K
	if len(d.keys) == 0 {
		return zk, 0, ErrEmptyDict
	}
	k := d.keys[len(d.keys)-1]
	v := d.vals[k]
	d.keys = d.keys[:len(d.keys)-1]
	delete(d.vals, k)
	return k, v, nil
}

// Clear removes all entries.
func (d *ParamDict1D[K, V]) Clear() {
	d.keys = d.keys[:0]
	d.vals = make(map[K]V)
}

// Keys returns a copy of the keys in insertion order.
func (d *ParamDict1D[K, V]) Keys() []K {
	cp := make([]K, len(d.keys))
	copy(cp, d.keys)
	return cp
}

// Values returns the values in key order.
func (d *ParamDict1D[K, V]) Values() []V {
	out := make([]V, len(d.keys))
	for i, k := range d.keys {
		out[i] = d.vals[k]
	}
	return out
}

// Entries returns the key/value pairs in key order.
func (d *ParamDict1D[K, V]) Entries() []Entry1D[K, V] {
	out := make([]Entry1D[K, V], len(d.keys))
	for i, k := range d.keys {
		out[i] = Entry1D[K, V]{Key: k, Value: d.vals[k]}
	}
	return out
}

// KeySet returns the keys as an IndexSet1D, in key order.
func (d *ParamDict1D[K, V]) KeySet() (*indexset.IndexSet1D[K], error) {
	s, err := indexset.New1D(d.keys...)
	if err != nil {
		return nil, err
	}
	s.SetName(d.name)
	return s, nil
}

// SortKeys reorders the keys in place by the given comparison.
func (d *ParamDict1D[K, V]) SortKeys(less func(a, b K) bool) {
	sortKeys(d.keys, less)
}

// String renders the dictionary as "ParamDict1D(name): {k1: v1, ...}".
func (d *ParamDict1D[K, V]) String() string {
	parts := make([]string, len(d.keys))
	for i, k := range d.keys {
		parts[i] = fmt.Sprintf("%v: %v", k, d.vals[k])
	}
	body := "{" + strings.Join(parts, ", ") + "}"
	if d.name != "" {
		return fmt.Sprintf("ParamDict1D(%s): %s", d.name, body)
	}
	return "ParamDict1D: " + body
}

// ---------- reductions ----------

// Sum returns the sum of all values; an empty dictionary sums to 0.
func (d *ParamDict1D[K, V]) Sum() V { return sumOf(d.Values()) }

// Min returns the smallest value, or ErrEmptyDict.
func (d *ParamDict1D[K, V]) Min() (V, error) { return minOf(d.Values()) }

// Max returns the largest value, or ErrEmptyDict.
func (d *ParamDict1D[K, V]) Max() (V, error) { return maxOf(d.Values()) }

// Mean returns the arithmetic mean of all values, or ErrEmptyDict.
func (d *ParamDict1D[K, V]) Mean() (float64, error) { return meanOf(d.Values()) }

// Median returns the median, averaging the two middle values on even counts.
func (d *ParamDict1D[K, V]) Median() (float64, error) {
	return medianOf(d.Values(), medianInterpolate)
}

// MedianLow returns the median, taking the lower middle value on even counts.
func (d *ParamDict1D[K, V]) MedianLow() (float64, error) {
	return medianOf(d.Values(), medianLow)
}

// MedianHigh returns the median, taking the higher middle value on even counts.
func (d *ParamDict1D[K, V]) MedianHigh() (float64, error) {
	return medianOf(d.Values(), medianHigh)
}

func sortKeys[K any](keys []K, less func(a, b K) bool) {
	sort.SliceStable(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
}
