// SPDX-License-Identifier: MIT

package vardict

import (
	"github.com/samarthmistry/opti-extensions/indexset"
	"github.com/samarthmistry/opti-extensions/paramdict"
	"github.com/samarthmistry/opti-extensions/solver"
)

// settings collects AddVariables knobs before handles are created. Bounds
// resolve in layers: the VarType default, then a uniform override, then a
// per-key dictionary override.
type settings[K comparable] struct {
	base    string
	hasLB   bool
	lb      float64
	hasUB   bool
	ub      float64
	lbByKey func(K) (float64, bool)
	ubByKey func(K) (float64, bool)
}

func (c *settings[K]) boundsFor(key K, vt solver.VarType) (float64, float64, error) {
	lb, ub := solver.DefaultBounds(vt)
	if c.hasLB {
		lb = c.lb
	}
	if c.hasUB {
		ub = c.ub
	}
	if c.lbByKey != nil {
		if v, ok := c.lbByKey(key); ok {
			lb = v
		}
	}
	if c.ubByKey != nil {
		if v, ok := c.ubByKey(key); ok {
			ub = v
		}
	}
	if vt == solver.Binary {
		lb = max(lb, 0)
		ub = min(ub, 1)
	}
	if err := solver.CheckBounds(lb, ub); err != nil {
		return 0, 0, err
	}
	return lb, ub, nil
}

// Option1D customizes AddVariables1D.
type Option1D[K comparable] func(*settings[K])

// WithName1D sets the base for generated variable names; the default is the
// index-set's name, falling back to "x".
func WithName1D[K comparable](base string) Option1D[K] {
	return func(c *settings[K]) { c.base = base }
}

// WithLowerBound1D applies one lower bound to every variable.
func WithLowerBound1D[K comparable](lb float64) Option1D[K] {
	return func(c *settings[K]) { c.hasLB, c.lb = true, lb }
}

// WithUpperBound1D applies one upper bound to every variable.
func WithUpperBound1D[K comparable](ub float64) Option1D[K] {
	return func(c *settings[K]) { c.hasUB, c.ub = true, ub }
}

// WithLowerBoundDict1D draws per-key lower bounds from a parameter
// dictionary; keys absent from the dictionary keep the preceding bound.
func WithLowerBoundDict1D[K comparable, V paramdict.Real](pd *paramdict.ParamDict1D[K, V]) Option1D[K] {
	return func(c *settings[K]) {
		c.lbByKey = func(k K) (float64, bool) {
			v, err := pd.Get(k)
			return float64(v), err == nil
		}
	}
}

// WithUpperBoundDict1D draws per-key upper bounds from a parameter
// dictionary; keys absent from the dictionary keep the preceding bound.
func WithUpperBoundDict1D[K comparable, V paramdict.Real](pd *paramdict.ParamDict1D[K, V]) Option1D[K] {
	return func(c *settings[K]) {
		c.ubByKey = func(k K) (float64, bool) {
			v, err := pd.Get(k)
			return float64(v), err == nil
		}
	}
}

// OptionND customizes AddVariablesND.
type OptionND func(*settings[string])

// WithNameND sets the base for generated variable names.
func WithNameND(base string) OptionND {
	return func(c *settings[string]) { c.base = base }
}

// WithLowerBoundND applies one lower bound to every variable.
func WithLowerBoundND(lb float64) OptionND {
	return func(c *settings[string]) { c.hasLB, c.lb = true, lb }
}

// WithUpperBoundND applies one upper bound to every variable.
func WithUpperBoundND(ub float64) OptionND {
	return func(c *settings[string]) { c.hasUB, c.ub = true, ub }
}

// WithLowerBoundDictND draws per-key lower bounds from an N-D parameter
// dictionary; keys absent from the dictionary keep the preceding bound.
func WithLowerBoundDictND[V paramdict.Real](pd *paramdict.ParamDictND[V]) OptionND {
	byKey := tupleBounds(pd)
	return func(c *settings[string]) { c.lbByKey = byKey }
}

// WithUpperBoundDictND draws per-key upper bounds from an N-D parameter
// dictionary; keys absent from the dictionary keep the preceding bound.
func WithUpperBoundDictND[V paramdict.Real](pd *paramdict.ParamDictND[V]) OptionND {
	byKey := tupleBounds(pd)
	return func(c *settings[string]) { c.ubByKey = byKey }
}

// tupleBounds adapts an N-D dictionary to the canonical-key form the ND
// settings use internally.
func tupleBounds[V paramdict.Real](pd *paramdict.ParamDictND[V]) func(string) (float64, bool) {
	byKey := make(map[string]float64, pd.Len())
	for _, e := range pd.Entries() {
		byKey[e.Key.Key()] = float64(e.Value)
	}
	return func(k string) (float64, bool) {
		v, ok := byKey[k]
		return v, ok
	}
}

// varName joins the base and a key rendering into "base(key)".
func varName(base, key string) string { return base + "(" + key + ")" }

// tupleLabel renders a tuple as "c1,c2" for variable names.
func tupleLabel(t indexset.Tuple) string {
	s := t.String() // "(c1, c2)"
	s = s[1 : len(s)-1]
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' && i > 0 && s[i-1] == ',' {
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
