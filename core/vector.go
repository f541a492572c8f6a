package core

import "math"

// Dim returns the number of coordinates of v.
func (v Vector) Dim() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Add returns v + w as a fresh Vector. Operands are not mutated.
// Panics if the dimensions differ (programmer error; validate at the boundary).
func (v Vector) Add(w Vector) Vector {
	if len(v) != len(w) {
		panic(panicDimMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}

	return out
}

// Sub returns v − w as a fresh Vector. Operands are not mutated.
// Panics if the dimensions differ.
func (v Vector) Sub(w Vector) Vector {
	if len(v) != len(w) {
		panic(panicDimMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}

	return out
}

// Scale returns s·v as a fresh Vector.
func (v Vector) Scale(s float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = s * v[i]
	}

	return out
}

// Dot returns the Euclidean inner product ⟨v, w⟩.
// Panics if the dimensions differ.
func (v Vector) Dot(w Vector) float64 {
	if len(v) != len(w) {
		panic(panicDimMismatch)
	}
	var sum float64
	for i := range v {
		sum += v[i] * w[i]
	}

	return sum
}

// Norm2 returns the squared Euclidean norm ⟨v, v⟩.
func (v Vector) Norm2() float64 {
	var sum float64
	for i := range v {
		sum += v[i] * v[i]
	}

	return sum
}

// Norm returns the Euclidean norm ‖v‖.
func (v Vector) Norm() float64 { return math.Sqrt(v.Norm2()) }

// Unit returns v / ‖v‖ as a fresh Vector.
// Panics on the zero vector; callers must check the norm first (the affine
// and circumsphere packages only normalize residuals already known to exceed
// their epsilon).
func (v Vector) Unit() Vector {
	n := v.Norm()
	if n == 0 {
		panic(panicZeroVector)
	}

	return v.Scale(1 / n)
}
