package affine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/euclid/core"
)

// Simplex is an ordered, nonempty, affinely independent family of points:
// no point lies in the affine span of the others. A family of k+1 points
// therefore spans an affine subspace of dimension exactly k.
//
// The only way to obtain a Simplex is NewSimplex, so every value of this
// type carries its independence precondition with it. Simplex is immutable
// after construction.
type Simplex struct {
	points []core.Point
	span   *Span
}

// NewSimplex validates that the given family is affinely independent and
// returns it as a Simplex together with its affine span.
//
// Independence is checked incrementally: starting from the first point's
// zero-dimensional span, each following point must extend the span by one
// direction. A point whose residual against the current span has norm ≤
// epsilon is dependent and rejects the whole family.
//
// Preconditions and validation (in order):
//  1. points must be non-empty (ErrNoPoints).
//  2. every point non-empty, finite, one shared dimension
//     (core.ErrEmpty, core.ErrNaNInf, core.ErrDimensionMismatch).
//  3. no point in the span of its predecessors (ErrDependentPoint; the
//     wrapped message names the offending index).
//
// Complexity: O(n²·d) for n points in ℝᵈ.
func NewSimplex(points []core.Point, opts ...Option) (*Simplex, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if err := core.ValidatePoints(points...); err != nil {
		return nil, fmt.Errorf("affine: NewSimplex: %w", err)
	}

	span, err := NewSpan(points[:1], opts...)
	if err != nil {
		return nil, err
	}
	for i, p := range points[1:] {
		next, err := span.Extend(p)
		if errors.Is(err, ErrPointInSpan) {
			return nil, fmt.Errorf("affine: NewSimplex: point %d: %w", i+1, ErrDependentPoint)
		}
		if err != nil {
			return nil, err
		}
		span = next
	}

	out := &Simplex{points: make([]core.Point, len(points)), span: span}
	for i, p := range points {
		out.points[i] = p.Clone()
	}

	return out, nil
}

// Len returns the number of vertices.
func (sx *Simplex) Len() int { return len(sx.points) }

// Dim returns the simplex dimension: Len() − 1, which equals the affine
// dimension of its span by independence.
func (sx *Simplex) Dim() int { return len(sx.points) - 1 }

// AmbientDim returns the dimension of the surrounding space ℝᵈ.
func (sx *Simplex) AmbientDim() int { return len(sx.points[0]) }

// Point returns a copy of the i-th vertex. Panics on an out-of-range index,
// like a slice access.
func (sx *Simplex) Point(i int) core.Point { return sx.points[i].Clone() }

// Points returns defensive copies of the vertices in order.
func (sx *Simplex) Points() []core.Point {
	out := make([]core.Point, len(sx.points))
	for i, p := range sx.points {
		out[i] = p.Clone()
	}

	return out
}

// Span returns the affine span of the vertices. The returned value is the
// simplex's own immutable span, safe to share.
func (sx *Simplex) Span() *Span { return sx.span }
