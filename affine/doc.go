// Package affine provides affine spans of point families, orthogonal
// projection onto them, and the Simplex type for affinely independent
// families.
//
// Overview:
//
//   - A Span is a nonempty affine subspace held as a base point plus an
//     orthonormal basis of its direction, built by modified Gram–Schmidt.
//     Finite dimension of the direction — the completeness precondition of
//     the projection theorem — holds by construction.
//   - Project computes the unique point q of the span with (p − q)
//     orthogonal to every direction vector; Residual exposes p − q and its
//     norm; Contains tests membership up to the configured epsilon.
//   - Extend grows a span by one independent point, returning a fresh Span
//     and leaving the receiver untouched.
//   - A Simplex is an ordered family of affinely independent points. It can
//     only be obtained through NewSimplex, which validates independence by
//     incremental span extension, so holding a *Simplex is holding the
//     proof of its own preconditions.
//
// Numeric policy:
//
//   - Gram–Schmidt residuals with norm ≤ epsilon are treated as dependent
//     directions. The default epsilon is core.DefaultEpsilon; override it
//     per call with WithEpsilon.
//   - All user-supplied coordinates are validated up front: NaN/±Inf and
//     mixed dimensions fail fast with core sentinels wrapped in package
//     context.
//
// Error handling (matched via errors.Is):
//
//   - ErrNoPoints            — an empty family was supplied.
//   - ErrPointInSpan         — Extend was asked to add a point the span
//     already contains.
//   - ErrDependentPoint      — NewSimplex found a point inside the span of
//     its predecessors.
//   - core.ErrDimensionMismatch, core.ErrNaNInf, core.ErrEmpty — coordinate
//     defects, wrapped with "affine: <op>:" context.
//
// Complexity:
//
//   - NewSpan over n points in ℝᵈ: O(n·k·d) where k ≤ min(n−1, d) is the
//     resulting direction dimension.
//   - Project/Residual/Contains: O(k·d).
//   - Extend: O(k·d).
//
// Thread safety:
//
//   - Span and Simplex are immutable after construction and safe for
//     concurrent readers.
package affine
