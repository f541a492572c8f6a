package circumsphere

import (
	"fmt"
	"math"

	"github.com/katalvlaran/euclid/affine"
	"github.com/katalvlaran/euclid/core"
)

// Validate numerically checks that s is the circumsphere of the given
// points, up to tol:
//
//  1. Equidistance: |dist(Center, pᵢ) − Radius| ≤ tol for every i
//     (ErrNotEquidistant, with the worst offender's index and deviation in
//     the wrapped message).
//  2. Center in span: the residual of Center against the affine span of the
//     points has norm ≤ tol (ErrCenterOffSpan). Equidistance alone does not
//     pin the center — any point on the line through the circumcenter
//     orthogonal to the span is equidistant too — so both checks are needed
//     for uniqueness.
//
// Preconditions and validation (in order):
//  1. tol finite and ≥ 0 (ErrBadTolerance).
//  2. points non-empty (ErrNoPoints).
//  3. points and Center non-empty, finite, one shared dimension
//     (core.ErrEmpty, core.ErrNaNInf, core.ErrDimensionMismatch).
//
// Complexity: O(n·d) plus one span construction, O(n·k·d).
func Validate(s Sphere, points []core.Point, tol float64) error {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return ErrBadTolerance
	}
	if len(points) == 0 {
		return ErrNoPoints
	}
	if err := core.ValidatePoints(append([]core.Point{s.Center}, points...)...); err != nil {
		return fmt.Errorf("circumsphere: Validate: %w", err)
	}

	// 1) Equidistance: track the worst deviation for the error message.
	var worst float64
	worstIdx := -1
	for i, p := range points {
		dev := math.Abs(core.Dist(s.Center, p) - s.Radius)
		if dev > worst {
			worst, worstIdx = dev, i
		}
	}
	if worst > tol {
		return fmt.Errorf("circumsphere: Validate: point %d deviates by %g: %w",
			worstIdx, worst, ErrNotEquidistant)
	}

	// 2) Center must lie in the affine span of the points.
	span, err := affine.NewSpan(points)
	if err != nil {
		return fmt.Errorf("circumsphere: Validate: %w", err)
	}
	if _, n, err := span.Residual(s.Center); err != nil {
		return fmt.Errorf("circumsphere: Validate: %w", err)
	} else if n > tol {
		return fmt.Errorf("circumsphere: Validate: center is %g off the span: %w",
			n, ErrCenterOffSpan)
	}

	return nil
}
