package circumsphere

import (
	"github.com/katalvlaran/euclid/affine"
	"github.com/katalvlaran/euclid/core"
)

// Circumsphere returns the circumcenter/circumradius pair of the given
// ordered point family.
//
// The family must be affinely independent: the first point found inside the
// affine span of its predecessors rejects the whole call with
// ErrDependentPoint (the wrapped message names its index). For a family
// already validated elsewhere, use OfSimplex.
//
// Preconditions and validation (in order):
//  1. points must be non-empty (ErrNoPoints).
//  2. every point non-empty, finite, one shared dimension
//     (core.ErrEmpty, core.ErrNaNInf, core.ErrDimensionMismatch).
//  3. affine independence (ErrDependentPoint).
//
// Complexity: O(n²·d) for n points in ℝᵈ.
func Circumsphere(points []core.Point, opts ...Option) (Sphere, error) {
	if len(points) == 0 {
		return Sphere{}, ErrNoPoints
	}

	b := NewBuilder(opts...)
	for _, p := range points {
		if err := b.Add(p); err != nil {
			return Sphere{}, err
		}
	}
	s, _ := b.Current()

	return s, nil
}

// OfSimplex returns the circumsphere of a pre-validated simplex.
//
// The simplex's own independence guarantee makes ErrDependentPoint
// impossible here unless a stricter epsilon is supplied than the one the
// simplex was built with.
//
// Errors: ErrNilSimplex; otherwise as Circumsphere.
func OfSimplex(sx *affine.Simplex, opts ...Option) (Sphere, error) {
	if sx == nil {
		return Sphere{}, ErrNilSimplex
	}

	return Circumsphere(sx.Points(), opts...)
}
