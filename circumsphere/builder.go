package circumsphere

import (
	"fmt"
	"math"

	"github.com/katalvlaran/euclid/affine"
	"github.com/katalvlaran/euclid/core"
)

// Builder computes a circumsphere incrementally: every Add performs one
// induction step, so the running center/radius pair for the points seen so
// far is available at any moment via Current. Points must be affinely
// independent as added; a dependent point is rejected and leaves the
// builder unchanged.
//
// Builder is not safe for concurrent use; synchronize externally if shared.
type Builder struct {
	span   *affine.Span // span of the points added so far; nil until the first Add
	center core.Point   // running circumcenter, always inside span
	radius float64      // running circumradius
	count  int          // number of accepted points
	eps    float64      // dependence threshold
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	cfg := gatherOptions(opts...)

	return &Builder{eps: cfg.Epsilon}
}

// Add performs one induction step with p.
//
// Base step (first point): center = p, radius = 0, span = {p}.
//
// Inductive step: project p onto the current span; the residual length y
// must exceed epsilon (otherwise ErrDependentPoint). With x = dist(center,
// projection) the unique equidistance offset along the residual direction is
// t = (x² + y² − r²) / (2y); the center moves by t·u and the radius becomes
// √(r² + t²).
//
// Errors:
//   - ErrDependentPoint if p lies in the span of the accepted points;
//   - core.ErrEmpty / core.ErrNaNInf / core.ErrDimensionMismatch for
//     coordinate defects, wrapped with "circumsphere: Add:" context.
//
// On error the builder state is unchanged.
//
// Complexity: O(k·d) for the k-th accepted point in ℝᵈ.
func (b *Builder) Add(p core.Point) error {
	if err := core.ValidatePoints(p); err != nil {
		return fmt.Errorf("circumsphere: Add: %w", err)
	}

	// Base case: the singleton sphere.
	if b.count == 0 {
		span, err := affine.NewSpan([]core.Point{p}, affine.WithEpsilon(b.eps))
		if err != nil {
			return fmt.Errorf("circumsphere: Add: %w", err)
		}
		b.span = span
		b.center = p.Clone()
		b.radius = 0
		b.count = 1

		return nil
	}

	if p.Dim() != b.span.AmbientDim() {
		return fmt.Errorf("circumsphere: Add: %w", core.ErrDimensionMismatch)
	}

	// Inductive step.
	r, y, err := b.span.Residual(p)
	if err != nil {
		return fmt.Errorf("circumsphere: Add: %w", err)
	}
	if y <= b.eps {
		return fmt.Errorf("circumsphere: Add: point %d: %w", b.count, ErrDependentPoint)
	}
	u := r.Scale(1 / y)

	q := p.Add(r.Scale(-1)) // projection of p onto the span: p − residual
	x := core.Dist(b.center, q)
	t := (x*x + y*y - b.radius*b.radius) / (2 * y)

	span, err := b.span.Extend(p)
	if err != nil {
		// Extend re-derives the same residual; y > eps rules ErrPointInSpan
		// out, so anything here is a coordinate defect already wrapped.
		return fmt.Errorf("circumsphere: Add: %w", err)
	}

	b.span = span
	b.center = b.center.Add(u.Scale(t))
	b.radius = math.Sqrt(b.radius*b.radius + t*t)
	b.count++

	return nil
}

// Current returns the circumsphere of the points accepted so far. The
// boolean is false while no point has been added.
func (b *Builder) Current() (Sphere, bool) {
	if b.count == 0 {
		return Sphere{}, false
	}

	return Sphere{Center: b.center.Clone(), Radius: b.radius}, true
}

// Len returns the number of accepted points.
func (b *Builder) Len() int { return b.count }

// Span returns the affine span of the accepted points, or nil while the
// builder is empty.
func (b *Builder) Span() *affine.Span { return b.span }
