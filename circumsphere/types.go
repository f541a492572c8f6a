// SPDX-License-Identifier: MIT
// Package circumsphere: result type, sentinel errors, and functional
// configuration. Algorithms return these sentinels (possibly wrapped with
// fmt.Errorf("circumsphere: <op>: %w", …)); tests match via errors.Is.

package circumsphere

import (
	"errors"
	"math"

	"github.com/katalvlaran/euclid/core"
)

// Sentinel errors for circumsphere construction and validation.
var (
	// ErrNoPoints indicates an empty point family.
	ErrNoPoints = errors.New("circumsphere: at least one point is required")

	// ErrNilSimplex indicates a nil *affine.Simplex argument.
	ErrNilSimplex = errors.New("circumsphere: simplex is nil")

	// ErrDependentPoint indicates a point inside the affine span of its
	// predecessors: the affine independence precondition is violated and no
	// unique circumsphere exists for the family as ordered.
	ErrDependentPoint = errors.New("circumsphere: point lies in the span of its predecessors")

	// ErrBadTolerance indicates a negative or non-finite validation tolerance.
	ErrBadTolerance = errors.New("circumsphere: tolerance must be finite and non-negative")

	// ErrNotEquidistant indicates a sphere whose distance to some vertex
	// deviates from the radius by more than the validation tolerance.
	ErrNotEquidistant = errors.New("circumsphere: sphere is not equidistant from the points")

	// ErrCenterOffSpan indicates a center farther from the affine span of
	// the points than the validation tolerance allows. The circumcenter is
	// only unique among points of the span; a center outside it is wrong
	// even when it happens to be equidistant.
	ErrCenterOffSpan = errors.New("circumsphere: center is outside the affine span of the points")
)

// panicEpsilonInvalid mirrors the affine option contract.
const panicEpsilonInvalid = "circumsphere: WithEpsilon: eps must be finite, non-negative"

// Sphere is a circumcenter/circumradius pair. For an affinely independent
// family it is the unique sphere through every vertex whose center lies in
// the family's affine span.
type Sphere struct {
	// Center is the circumcenter: equidistant from every vertex.
	Center core.Point

	// Radius is the circumradius: the common distance. Always ≥ 0.
	Radius float64
}

// Options stores the effective configuration after applying Option setters.
//
// Epsilon — dependence threshold forwarded to the underlying affine spans: a
// projection residual with norm ≤ Epsilon marks the new point as dependent.
// Default is core.DefaultEpsilon.
type Options struct {
	Epsilon float64
}

// Option is a functional option for the circumsphere solver.
type Option func(*Options)

// WithEpsilon overrides the dependence threshold.
// Panics on negative or non-finite eps (programmer error).
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			panic(panicEpsilonInvalid)
		}
		o.Epsilon = eps
	}
}

// DefaultOptions returns the Options used when no overrides are supplied.
//
// Defaults:
//   - Epsilon: core.DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: core.DefaultEpsilon}
}

// gatherOptions resolves the effective configuration.
func gatherOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
