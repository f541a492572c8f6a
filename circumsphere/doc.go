// Package circumsphere computes the circumcenter and circumradius of an
// affinely independent point family: the unique point of the family's
// affine span equidistant from every vertex, and that common distance.
//
// Algorithm (induction over orthogonal projections):
//
//  1. Base: a single point p₀ has center p₀ and radius 0.
//  2. Step: given the center/radius pair (c, r) for the first k points and a
//     new point p outside their span,
//     – project p onto the span: q, residual direction u = (p − q)/y with
//     y = ‖p − q‖ > 0;
//     – with x = dist(c, q), the offset along u that restores equidistance
//     is the unique solution of r² + t² = x² + (t − y)², namely
//     t = (x² + y² − r²) / (2y);
//     – the new pair is c' = c + t·u, r' = √(r² + t²).
//
// Uniqueness: any equidistant point of the larger span projects onto the old
// span at c (by k-point uniqueness), and its offset along u is pinned by the
// linear equation above. The Validate harness checks both properties
// numerically.
//
// Entry points:
//
//   - Circumsphere(points, …)  — one-shot over a raw family; rejects the
//     first point found inside the span of its predecessors.
//   - OfSimplex(sx, …)         — one-shot over a pre-validated
//     affine.Simplex.
//   - Builder                  — incremental: one induction step per Add,
//     with the running sphere available after every step.
//   - Validate(s, points, tol) — numeric sanity check: equidistance and
//     center-in-span within tol.
//
// Error handling (sentinel, matched via errors.Is):
//
//   - ErrNoPoints        — an empty family was supplied.
//   - ErrNilSimplex      — OfSimplex received a nil simplex.
//   - ErrDependentPoint  — a point lies in the affine span of its
//     predecessors (affine independence precondition violated).
//   - ErrBadTolerance    — Validate received a negative or non-finite tol.
//   - ErrNotEquidistant  — Validate: some vertex is off the sphere by more
//     than tol.
//   - ErrCenterOffSpan   — Validate: the center is farther than tol from
//     the affine span of the points.
//   - core.ErrEmpty, core.ErrNaNInf, core.ErrDimensionMismatch — coordinate
//     defects, wrapped with package context.
//
// Complexity:
//
//   - Circumsphere over n points in ℝᵈ: O(n²·d) — one projection against a
//     growing orthonormal basis per induction step.
//   - Validate: O(n·d) for the equidistance pass plus one span construction.
//
// Determinism:
//
//   - Fully deterministic: the result depends only on the point family and
//     epsilon; no randomness, no global state.
package circumsphere
