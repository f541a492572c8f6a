// Package core defines the central Vector and Point types and the numeric
// policy shared by every algorithm in euclid.
//
// Vectors are elements of ℝⁿ; Points are elements of the affine space over
// ℝⁿ. The two are distinct types on purpose: subtracting two Points yields a
// Vector, translating a Point by a Vector yields a Point, and the compiler
// keeps the two roles from being mixed up.
//
// This file declares Vector, Point, the package numeric constants, and the
// sentinel errors used across core.
//
// Errors:
//
//	ErrEmpty             - coordinate slice has zero length.
//	ErrDimensionMismatch - operands do not share one dimension.
//	ErrNaNInf            - NaN or ±Inf encountered where finite values are required.
//	ErrCountMismatch     - points/weights slices differ in length.
//	ErrBadWeights        - affine combination weights do not sum to one.
package core

import "errors"

// DefaultEpsilon is the non-negative tolerance used by numeric comparisons
// throughout euclid (weight sums, residual norms, containment tests).
const DefaultEpsilon = 1e-9

// Sentinel errors for core geometric operations.
var (
	// ErrEmpty indicates a zero-length coordinate slice where a point or
	// vector with at least one coordinate is required.
	ErrEmpty = errors.New("core: empty coordinate slice")

	// ErrDimensionMismatch indicates operands that do not share one ambient
	// dimension.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("core: NaN or Inf encountered")

	// ErrCountMismatch indicates that parallel slices (points and weights)
	// differ in length.
	ErrCountMismatch = errors.New("core: points/weights count mismatch")

	// ErrBadWeights indicates affine combination weights that do not sum to
	// one within DefaultEpsilon.
	ErrBadWeights = errors.New("core: affine weights must sum to one")
)

// Internal panic messages for programmer errors (no magic strings).
// Arithmetic kernels assume validated operands; a dimension mismatch inside
// them is a caller bug, not user input, so they panic instead of returning.
const (
	panicDimMismatch = "core: operand dimension mismatch"
	panicZeroVector  = "core: unit of zero vector"
)

// Vector is an element of the real inner-product space ℝⁿ.
//
// The zero value is the empty vector; use ValidateVectors before handing
// user-supplied data to the arithmetic kernels.
type Vector []float64

// Point is an element of the affine space over ℝⁿ. Points support
// differences (Point − Point → Vector) and translation (Point + Vector →
// Point) but deliberately no addition or scaling of their own.
type Point []float64
