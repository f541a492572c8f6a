// SPDX-License-Identifier: MIT
// Package affine: sentinel errors and functional configuration.
// Algorithms in this package return these sentinels (possibly wrapped with
// fmt.Errorf("affine: <op>: %w", …)) and tests match them via errors.Is.
// Option constructors panic on nonsensical values (programmer error);
// user-data defects never panic.

package affine

import (
	"errors"
	"math"

	"github.com/katalvlaran/euclid/core"
)

// Sentinel errors for span and simplex construction.
var (
	// ErrNoPoints indicates an empty point family where at least one point
	// is required (a span and a simplex are nonempty by definition).
	ErrNoPoints = errors.New("affine: at least one point is required")

	// ErrPointInSpan indicates that Extend was asked to add a point that
	// already lies in the span (residual norm ≤ epsilon).
	ErrPointInSpan = errors.New("affine: point already lies in the span")

	// ErrDependentPoint indicates that a simplex family is affinely
	// dependent: some point lies in the affine span of its predecessors.
	ErrDependentPoint = errors.New("affine: affinely dependent point family")
)

// panicEpsilonInvalid is the message used when WithEpsilon receives a
// negative or non-finite tolerance.
const panicEpsilonInvalid = "affine: WithEpsilon: eps must be finite, non-negative"

// Options stores the effective configuration after applying Option setters.
//
// Epsilon — non-negative dependence threshold: a Gram–Schmidt residual with
// norm ≤ Epsilon is treated as lying inside the current span. Default is
// core.DefaultEpsilon.
type Options struct {
	Epsilon float64
}

// Option is a functional option for span and simplex construction.
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
