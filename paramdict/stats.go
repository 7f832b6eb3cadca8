// SPDX-License-Identifier: MIT

package paramdict

import (
	"sort"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Real is the value constraint shared by both dictionary shapes: any integer
// or floating-point type. Reductions widen to float64 internally.
type Real interface {
	constraints.Integer | constraints.Float
}

func toFloats[V Real](vals []V) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}
	return out
}

// sumOf returns 0 for no values; summation itself never fails.
// Integer values accumulate in V, so sums stay exact past the 2^53 point
// where a float64 round trip would drop low bits.
func sumOf[V Real](vals []V) V {
	if len(vals) == 0 {
		return 0
	}
	if isFloat[V]() {
		return V(floats.Sum(toFloats(vals)))
	}
	var s V
	for _, v := range vals {
		s += v
	}
	return s
}

// isFloat reports whether V is a floating-point type.
func isFloat[V Real]() bool { return V(1)/V(2) != 0 }

func minOf[V Real](vals []V) (V, error) {
	if len(vals) == 0 {
		return 0, ErrEmptyDict
	}
	return vals[floats.MinIdx(toFloats(vals))], nil
}

func maxOf[V Real](vals []V) (V, error) {
	if len(vals) == 0 {
		return 0, ErrEmptyDict
	}
	return vals[floats.MaxIdx(toFloats(vals))], nil
}

func meanOf[V Real](vals []V) (float64, error) {
	if len(vals) == 0 {
		return 0, ErrEmptyDict
	}
	return stat.Mean(toFloats(vals), nil), nil
}

// medianMode selects the tie-break for even-length inputs.
type medianMode int

const (
	medianInterpolate medianMode = iota // average of the two middle values
	medianLow                           // lower of the two middle values
	medianHigh                          // higher of the two middle values
)

func medianOf[V Real](vals []V, mode medianMode) (float64, error) {
	if len(vals) == 0 {
		return 0, ErrEmptyDict
	}
	fs := toFloats(vals)
	sort.Float64s(fs)
	n := len(fs)
	if n%2 == 1 {
		return fs[n/2], nil
	}
	switch mode {
	case medianLow:
		return fs[n/2-1], nil
	case medianHigh:
		return fs[n/2], nil
	default:
		return (fs[n/2-1] + fs[n/2]) / 2, nil
	}
}
