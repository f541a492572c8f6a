package core

import "math"

// Dim returns the number of coordinates of p.
func (p Point) Dim() int { return len(p) }

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	out := make(Point, len(p))
	copy(out, p)

	return out
}

// Sub returns the displacement vector p − q.
// Panics if the dimensions differ (programmer error; validate at the boundary).
func (p Point) Sub(q Point) Vector {
	if len(p) != len(q) {
		panic(panicDimMismatch)
	}
	out := make(Vector, len(p))
	for i := range p {
		out[i] = p[i] - q[i]
	}

	return out
}

// Add returns the translate p + v as a fresh Point.
// Panics if the dimensions differ.
func (p Point) Add(v Vector) Point {
	if len(p) != len(v) {
		panic(panicDimMismatch)
	}
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] + v[i]
	}

	return out
}

// Dist returns the Euclidean distance between p and q.
// Panics if the dimensions differ.
func Dist(p, q Point) float64 { return math.Sqrt(Dist2(p, q)) }

// Dist2 returns the squared Euclidean distance between p and q.
// Working with squared distances avoids the square root in comparisons.
// Panics if the dimensions differ.
func Dist2(p, q Point) float64 {
	if len(p) != len(q) {
		panic(panicDimMismatch)
	}
	var sum, d float64
	for i := range p {
		d = p[i] - q[i]
		sum += d * d
	}

	return sum
}

// Combine returns the affine combination Σ wᵢ·pᵢ of the given points.
//
// Preconditions and validation (in order):
//  1. points must be non-empty (ErrEmpty).
//  2. len(points) == len(weights) (ErrCountMismatch).
//  3. every point non-empty, finite and of one dimension
//     (ErrEmpty, ErrNaNInf, ErrDimensionMismatch).
//  4. every weight finite (ErrNaNInf).
//  5. Σ wᵢ == 1 within DefaultEpsilon (ErrBadWeights) — otherwise the result
//     would depend on the choice of origin and is not a point of the affine
//     space.
//
// Complexity: O(n·d) for n points in ℝᵈ.
func Combine(points []Point, weights []float64) (Point, error) {
	if len(points) == 0 {
		return nil, ErrEmpty
	}
	if len(points) != len(weights) {
		return nil, ErrCountMismatch
	}
	if err := ValidatePoints(points...); err != nil {
		return nil, err
	}

	var sum float64
	for _, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, ErrNaNInf
		}
		sum += w
	}
	if math.Abs(sum-1) > DefaultEpsilon {
		return nil, ErrBadWeights
	}

	// With Σ wᵢ == 1 the plain weighted sum equals the affine expression
	// p₀ + Σ wᵢ·(pᵢ − p₀) and is independent of the choice of origin.
	out := make(Point, len(points[0]))
	for j, p := range points {
		for i := range p {
			out[i] += weights[j] * p[i]
		}
	}

	return out, nil
}

// Barycenter returns the equal-weight affine combination of the given points.
// It shares Combine's validation and error contract.
func Barycenter(points []Point) (Point, error) {
	if len(points) == 0 {
		return nil, ErrEmpty
	}
	weights := make([]float64, len(points))
	w := 1 / float64(len(points))
	for i := range weights {
		weights[i] = w
	}

	return Combine(points, weights)
}
