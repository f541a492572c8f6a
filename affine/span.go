package affine

import (
	"fmt"

	"github.com/katalvlaran/euclid/core"
)

// Span is a nonempty affine subspace of ℝᵈ: a base point plus an orthonormal
// basis of its direction. The direction is finite-dimensional by
// construction, which is exactly the completeness precondition the
// orthogonal projection theorem needs, so Project is total on a valid Span.
//
// Span is immutable after construction; Extend returns a fresh value.
type Span struct {
	base  core.Point    // any point of the subspace; anchors the direction
	basis []core.Vector // pairwise orthonormal direction vectors
	eps   float64       // dependence threshold used at construction
}

// NewSpan returns the affine span of the given nonempty point family.
//
// The direction basis is built by modified Gram–Schmidt: each point's
// displacement from the base is stripped of its components along the basis
// so far; residuals with norm ≤ epsilon are dropped as dependent directions,
// all others are normalized and appended. Duplicate or dependent points are
// therefore legal here — they simply do not enlarge the span (contrast
// NewSimplex, which rejects them).
//
// Preconditions and validation (in order):
//  1. points must be non-empty (ErrNoPoints).
//  2. every point non-empty, finite, one shared dimension
//     (core.ErrEmpty, core.ErrNaNInf, core.ErrDimensionMismatch).
//
// Complexity: O(n·k·d) for n points in ℝᵈ with resulting direction
// dimension k.
func NewSpan(points []core.Point, opts ...Option) (*Span, error) {
	cfg := gatherOptions(opts...)

	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if err := core.ValidatePoints(points...); err != nil {
		return nil, fmt.Errorf("affine: NewSpan: %w", err)
	}

	s := &Span{base: points[0].Clone(), eps: cfg.Epsilon}
	for _, p := range points[1:] {
		r, n := s.residual(p)
		if n <= s.eps {
			continue // dependent direction; span unchanged
		}
		s.basis = append(s.basis, r.Scale(1/n))
	}

	return s, nil
}

// residual returns p − Project(p) and its norm, assuming p has already been
// validated against the span's ambient dimension.
func (s *Span) residual(p core.Point) (core.Vector, float64) {
	d := p.Sub(s.base)
	for _, b := range s.basis {
		d = d.Sub(b.Scale(d.Dot(b)))
	}

	return d, d.Norm()
}

// checkAmbient validates a user-supplied point against the span.
func (s *Span) checkAmbient(op string, p core.Point) error {
	if err := core.ValidatePoints(p); err != nil {
		return fmt.Errorf("affine: %s: %w", op, err)
	}
	if p.Dim() != s.AmbientDim() {
		return fmt.Errorf("affine: %s: %w", op, core.ErrDimensionMismatch)
	}

	return nil
}

// Project returns the orthogonal projection of p onto the span: the unique
// point q of the span with (p − q) orthogonal to every direction vector.
// Equivalently, q is the nearest point of the span to p, and the unique
// intersection of the span with the affine subspace through p in the
// orthogonal-complement direction.
//
// Errors: core.ErrEmpty / core.ErrNaNInf / core.ErrDimensionMismatch,
// wrapped with "affine: Project:" context.
//
// Complexity: O(k·d).
func (s *Span) Project(p core.Point) (core.Point, error) {
	if err := s.checkAmbient("Project", p); err != nil {
		return nil, err
	}

	d := p.Sub(s.base)
	q := s.base.Clone()
	for _, b := range s.basis {
		q = q.Add(b.Scale(d.Dot(b)))
	}

	return q, nil
}

// Residual returns the orthogonal residual p − Project(p) together with its
// norm, i.e. the distance from p to the span. A norm ≤ Epsilon means p lies
// in the span up to the numeric policy.
//
// Errors: as for Project, wrapped with "affine: Residual:" context.
func (s *Span) Residual(p core.Point) (core.Vector, float64, error) {
	if err := s.checkAmbient("Residual", p); err != nil {
		return nil, 0, err
	}
	r, n := s.residual(p)

	return r, n, nil
}

// Contains reports whether p lies in the span: residual norm ≤ Epsilon.
//
// Errors: as for Project, wrapped with "affine: Contains:" context.
func (s *Span) Contains(p core.Point) (bool, error) {
	if err := s.checkAmbient("Contains", p); err != nil {
		return false, err
	}
	_, n := s.residual(p)

	return n <= s.eps, nil
}

// Extend returns the span of S ∪ {p}: a fresh Span whose direction basis
// carries one extra orthonormal vector, the normalized residual of p. The
// receiver is not mutated.
//
// Errors:
//   - ErrPointInSpan if p already lies in the span (residual ≤ Epsilon);
//   - coordinate defects as for Project, wrapped with "affine: Extend:".
func (s *Span) Extend(p core.Point) (*Span, error) {
	if err := s.checkAmbient("Extend", p); err != nil {
		return nil, err
	}
	r, n := s.residual(p)
	if n <= s.eps {
		return nil, ErrPointInSpan
	}

	basis := make([]core.Vector, len(s.basis), len(s.basis)+1)
	for i, b := range s.basis {
		basis[i] = b.Clone()
	}
	basis = append(basis, r.Scale(1/n))

	return &Span{base: s.base.Clone(), basis: basis, eps: s.eps}, nil
}

// Dim returns the affine dimension of the span: the number of direction
// basis vectors. A single point has dimension 0.
func (s *Span) Dim() int { return len(s.basis) }

// AmbientDim returns the dimension of the surrounding space ℝᵈ.
func (s *Span) AmbientDim() int { return len(s.base) }

// Base returns a copy of the span's base point.
func (s *Span) Base() core.Point { return s.base.Clone() }

// Basis returns defensive copies of the orthonormal direction basis.
func (s *Span) Basis() []core.Vector {
	out := make([]core.Vector, len(s.basis))
	for i, b := range s.basis {
		out[i] = b.Clone()
	}

	return out
}

// Epsilon returns the dependence threshold the span was built with.
func (s *Span) Epsilon() float64 { return s.eps }
