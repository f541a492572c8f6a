// Package euclid is a small numeric toolkit for Euclidean geometry —
// from vector and point primitives to orthogonal projection and the
// incremental circumsphere construction over affinely independent
// point families.
//
// 🚀 What is euclid?
//
//	A deterministic, precondition-driven library that brings together:
//		• Core primitives: vectors, points, inner products, distances,
//		  affine combinations with strict finite-value validation
//		• Affine spans: orthonormal direction bases via modified
//		  Gram–Schmidt, containment tests and span extension
//		• Orthogonal projection: the unique nearest point in a span,
//		  with its orthogonal residual
//		• Simplices: ordered, affinely independent families, enforced
//		  by construction
//		• Circumspheres: the unique center/radius pair equidistant from
//		  every vertex, built one induction step at a time
//
// ✨ Why choose euclid?
//
//   - Fail-fast preconditions – sentinel errors, matched via errors.Is
//   - Deterministic numerics – explicit epsilon policy, no randomness
//   - Pure Go – no cgo, arbitrary ambient dimension
//
// Under the hood, everything is organized under three subpackages:
//
//	core/         — Vector, Point, distance, affine combination, validation
//	affine/       — Span, Simplex, orthogonal projection
//	circumsphere/ — incremental circumcenter/circumradius solver
//
// Quick ASCII example:
//
//	    (0,1)
//	      │╲
//	      │ ╲        circumcenter (0.5, 0.5)
//	      │  ╲       circumradius √2/2
//	    (0,0)─(1,0)
//
// The cmd/circumsphere harness reads point tables from disk, solves each
// set and validates the equidistance and span invariants numerically.
//
//	go get github.com/katalvlaran/euclid
package euclid
