package circumsphere_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/euclid/affine"
	"github.com/katalvlaran/euclid/circumsphere"
	"github.com/katalvlaran/euclid/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// TestCircumsphere_SinglePoint verifies the base case: a single point is its
// own circumcenter with radius 0.
func TestCircumsphere_SinglePoint(t *testing.T) {
	p := core.Point{4, 5, 6}

	s, err := circumsphere.Circumsphere([]core.Point{p})
	require.NoError(t, err)
	assert.Equal(t, p, s.Center, "a single point is its own circumcenter")
	assert.Equal(t, 0.0, s.Radius, "the singleton circumradius is zero")
}

// TestCircumsphere_RightTriangle pins the classical 2-D case from the
// concrete-formula cross-check: (0,0), (1,0), (0,1) → center (0.5, 0.5),
// radius √2/2.
func TestCircumsphere_RightTriangle(t *testing.T) {
	pts := []core.Point{{0, 0}, {1, 0}, {0, 1}}

	s, err := circumsphere.Circumsphere(pts)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s.Center[0], tol)
	assert.InDelta(t, 0.5, s.Center[1], tol)
	assert.InDelta(t, math.Sqrt2/2, s.Radius, tol)
}

// TestCircumsphere_EquilateralTriangle cross-checks against the closed form
// for a side-1 equilateral triangle: center at the centroid, radius 1/√3.
func TestCircumsphere_EquilateralTriangle(t *testing.T) {
	h := math.Sqrt(3) / 2
	pts := []core.Point{{0, 0}, {1, 0}, {0.5, h}}

	s, err := circumsphere.Circumsphere(pts)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s.Center[0], 1e-9)
	assert.InDelta(t, math.Sqrt(3)/6, s.Center[1], 1e-9)
	assert.InDelta(t, 1/math.Sqrt(3), s.Radius, 1e-9)
}

// TestCircumsphere_StandardSimplex checks {0, e₁, …, e_d} in ℝᵈ: center at
// (½, …, ½), radius √d/2.
func TestCircumsphere_StandardSimplex(t *testing.T) {
	const d = 4
	pts := make([]core.Point, d+1)
	pts[0] = make(core.Point, d)
	for i := 1; i <= d; i++ {
		p := make(core.Point, d)
		p[i-1] = 1
		pts[i] = p
	}

	s, err := circumsphere.Circumsphere(pts)
	require.NoError(t, err)
	for i := 0; i < d; i++ {
		assert.InDelta(t, 0.5, s.Center[i], tol, "coordinate %d", i)
	}
	assert.InDelta(t, math.Sqrt(d)/2, s.Radius, tol)
}

// TestCircumsphere_LowerDimensionalFamily solves a triangle embedded in a
// plane of ℝ³: the center must stay inside that plane.
func TestCircumsphere_LowerDimensionalFamily(t *testing.T) {
	pts := []core.Point{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}}

	s, err := circumsphere.Circumsphere(pts)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s.Center[0], tol)
	assert.InDelta(t, 0.5, s.Center[1], tol)
	assert.InDelta(t, 1.0, s.Center[2], tol, "center must stay in the z=1 plane")
	assert.InDelta(t, math.Sqrt2/2, s.Radius, tol)

	assert.NoError(t, circumsphere.Validate(s, pts, 1e-9))
}

// TestCircumsphere_GenericTetrahedron verifies the equidistance invariant on
// a full-dimensional generic family via Validate.
func TestCircumsphere_GenericTetrahedron(t *testing.T) {
	pts := []core.Point{
		{0.3, 1.2, -0.5},
		{2.1, 0.4, 0.9},
		{-1.0, 0.8, 0.3},
		{0.6, -1.4, 1.1},
	}

	s, err := circumsphere.Circumsphere(pts)
	require.NoError(t, err)
	assert.NoError(t, circumsphere.Validate(s, pts, 1e-9))

	for i, p := range pts {
		assert.InDelta(t, s.Radius, core.Dist(s.Center, p), 1e-9,
			"vertex %d must lie on the sphere", i)
	}
}

// TestCircumsphere_DependentPointRejected covers the precondition: adding a
// point already inside the span of its predecessors must fail.
func TestCircumsphere_DependentPointRejected(t *testing.T) {
	_, err := circumsphere.Circumsphere([]core.Point{{0, 0}, {1, 0}, {2, 0}})
	assert.ErrorIs(t, err, circumsphere.ErrDependentPoint, "collinear third point must be rejected")

	_, err = circumsphere.Circumsphere([]core.Point{{1, 1}, {1, 1}})
	assert.ErrorIs(t, err, circumsphere.ErrDependentPoint, "duplicate point must be rejected")
}

// TestCircumsphere_Validation walks the input precondition order.
func TestCircumsphere_Validation(t *testing.T) {
	_, err := circumsphere.Circumsphere(nil)
	assert.ErrorIs(t, err, circumsphere.ErrNoPoints)

	_, err = circumsphere.Circumsphere([]core.Point{{1, 2}, {1, 2, 3}})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)

	_, err = circumsphere.Circumsphere([]core.Point{{math.Inf(1), 0}})
	assert.ErrorIs(t, err, core.ErrNaNInf)
}

// TestCircumsphere_EpsilonOption shows a coarse epsilon rejecting a
// nearly-dependent family the default epsilon accepts.
func TestCircumsphere_EpsilonOption(t *testing.T) {
	pts := []core.Point{{0, 0}, {1, 0}, {1, 1e-6}}

	_, err := circumsphere.Circumsphere(pts)
	assert.NoError(t, err, "default epsilon keeps the nearly-dependent point")

	_, err = circumsphere.Circumsphere(pts, circumsphere.WithEpsilon(1e-3))
	assert.ErrorIs(t, err, circumsphere.ErrDependentPoint, "coarse epsilon must reject it")

	assert.Panics(t, func() { circumsphere.WithEpsilon(-1)(&circumsphere.Options{}) })
}

// TestCircumsphere_UniquenessProbe verifies the uniqueness contract
// numerically: perturbing the center along any span direction strictly
// breaks equidistance.
func TestCircumsphere_UniquenessProbe(t *testing.T) {
	pts := []core.Point{{0.3, 1.2, -0.5}, {2.1, 0.4, 0.9}, {-1.0, 0.8, 0.3}}
	s, err := circumsphere.Circumsphere(pts)
	require.NoError(t, err)

	span, err := affine.NewSpan(pts)
	require.NoError(t, err)

	for i, b := range span.Basis() {
		for _, delta := range []float64{-0.25, 0.25} {
			probe := s.Center.Add(b.Scale(delta))

			var lo, hi = math.Inf(1), math.Inf(-1)
			for _, p := range pts {
				d := core.Dist(probe, p)
				lo, hi = math.Min(lo, d), math.Max(hi, d)
			}
			assert.Greater(t, hi-lo, 1e-6,
				"perturbation %g along basis %d must break equidistance", delta, i)
		}
	}
}

// TestOfSimplex verifies the simplex entry point agrees with the raw family
// path and rejects nil.
func TestOfSimplex(t *testing.T) {
	pts := []core.Point{{0, 0}, {1, 0}, {0, 1}}
	sx, err := affine.NewSimplex(pts)
	require.NoError(t, err)

	fromSimplex, err := circumsphere.OfSimplex(sx)
	require.NoError(t, err)
	fromPoints, err := circumsphere.Circumsphere(pts)
	require.NoError(t, err)

	assert.Equal(t, fromPoints, fromSimplex, "both entry points must agree")

	_, err = circumsphere.OfSimplex(nil)
	assert.ErrorIs(t, err, circumsphere.ErrNilSimplex)
}
