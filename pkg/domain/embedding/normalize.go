package embedding

import "math"

// Normalize scales v to unit length in place. Zero vectors are left untouched.
func Normalize(v []float64) {
	var sumSquares float64
	for _, val := range v {
		sumSquares += val * val
	}

	norm := math.Sqrt(sumSquares)
	if norm == 0 {
		return
	}

	for i := range v {
		v[i] /= norm
	}
}
