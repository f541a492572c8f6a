package affine_test

import (
	"testing"

	"github.com/katalvlaran/euclid/affine"
	"github.com/katalvlaran/euclid/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSimplex_Triangle accepts a nondegenerate triangle and exposes its
// dimensions and span.
func TestNewSimplex_Triangle(t *testing.T) {
	sx, err := affine.NewSimplex([]core.Point{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)

	assert.Equal(t, 3, sx.Len())
	assert.Equal(t, 2, sx.Dim(), "a triangle is a 2-simplex")
	assert.Equal(t, 2, sx.AmbientDim())
	assert.Equal(t, 2, sx.Span().Dim(), "span dimension equals simplex dimension by independence")
}

// TestNewSimplex_SinglePoint accepts the degenerate-but-legal base case.
func TestNewSimplex_SinglePoint(t *testing.T) {
	sx, err := affine.NewSimplex([]core.Point{{4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, 1, sx.Len())
	assert.Equal(t, 0, sx.Dim())
}

// TestNewSimplex_DependentFamilies rejects collinear points, duplicates, and
// points inside the span of their predecessors.
func TestNewSimplex_DependentFamilies(t *testing.T) {
	cases := map[string][]core.Point{
		"collinear":          {{0, 0}, {1, 0}, {2, 0}},
		"duplicate":          {{1, 1}, {1, 1}},
		"midpoint of others": {{0, 0}, {1, 1}, {0.5, 0.5}},
		"in plane of others": {{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0.3, 0.4, 0}},
		"too many for R²":    {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	}

	for name, pts := range cases {
		_, err := affine.NewSimplex(pts)
		assert.ErrorIs(t, err, affine.ErrDependentPoint, "%s must be rejected", name)
	}
}

// TestNewSimplex_Validation walks the documented precondition order.
func TestNewSimplex_Validation(t *testing.T) {
	_, err := affine.NewSimplex(nil)
	assert.ErrorIs(t, err, affine.ErrNoPoints)

	_, err = affine.NewSimplex([]core.Point{{1, 2}, {1, 2, 3}})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}

// TestSimplex_AccessorsAreDefensive ensures the vertices cannot be mutated
// through the accessors.
func TestSimplex_AccessorsAreDefensive(t *testing.T) {
	sx, err := affine.NewSimplex([]core.Point{{0, 0}, {1, 0}})
	require.NoError(t, err)

	sx.Points()[0][0] = 99
	sx.Point(1)[0] = 99

	assert.Equal(t, core.Point{0, 0}, sx.Point(0))
	assert.Equal(t, core.Point{1, 0}, sx.Point(1))
}
