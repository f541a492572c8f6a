// SPDX-License-Identifier: MIT
// Package core: central validators for user-supplied coordinate data.
// Public entry points across euclid call these before touching the
// arithmetic kernels, so the kernels themselves can assume validated
// operands and stay allocation-lean.

package core

import "math"

// finite reports whether every coordinate is a finite float64.
func finite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// ValidatePoints checks that every point is non-empty (ErrEmpty), finite
// (ErrNaNInf), and that all points share one ambient dimension
// (ErrDimensionMismatch). A nil or empty argument list passes: "no data" is
// the caller's concern, not a coordinate defect.
func ValidatePoints(points ...Point) error {
	var dim int
	for i, p := range points {
		if len(p) == 0 {
			return ErrEmpty
		}
		if !finite(p) {
			return ErrNaNInf
		}
		if i == 0 {
			dim = len(p)
		} else if len(p) != dim {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// ValidateVectors checks that every vector is non-empty (ErrEmpty), finite
// (ErrNaNInf), and that all vectors share one dimension
// (ErrDimensionMismatch).
func ValidateVectors(vectors ...Vector) error {
	var dim int
	for i, v := range vectors {
		if len(v) == 0 {
			return ErrEmpty
		}
		if !finite(v) {
			return ErrNaNInf
		}
		if i == 0 {
			dim = len(v)
		} else if len(v) != dim {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// SameDim checks that p and q share one ambient dimension
// (ErrDimensionMismatch) and are non-empty (ErrEmpty). Use it at package
// boundaries before calling the panicking kernels.
func SameDim(p, q Point) error {
	if len(p) == 0 || len(q) == 0 {
		return ErrEmpty
	}
	if len(p) != len(q) {
		return ErrDimensionMismatch
	}

	return nil
}
