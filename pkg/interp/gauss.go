package interp

import (
	"errors"
	"math"
)

// ErrSingularSystem is reported by callers that reject non-finite solutions.
var ErrSingularSystem = errors.New("singular system: selected points do not determine a unique polynomial")

// Solve runs Gaussian elimination with partial pivoting on m in place and
// returns the k coefficients, highest power first.
//
// A zero pivot is divided by as-is, so a singular system yields Inf or NaN
// entries in the result rather than an error.
func Solve(m System) []float64 {
	n := m.Size()

	for i := 0; i < n; i++ {
		// Pick the row with the largest magnitude in column i.
		pivotRow := i
		for r := i + 1; r < n; r++ {
			if math.Abs(m[r][i]) > math.Abs(m[pivotRow][i]) {
				pivotRow = r
			}
		}
		if pivotRow != i {
			m[i], m[pivotRow] = m[pivotRow], m[i]
		}

		pivot := m[i][i]
		for j := i; j <= n; j++ {
			m[i][j] /= pivot
		}

		for r := i + 1; r < n; r++ {
			factor := m[r][i]
			for j := i; j <= n; j++ {
				m[r][j] -= factor * m[i][j]
			}
		}
	}

	result := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		result[i] = m[i][n]
		for j := i + 1; j < n; j++ {
			result[i] -= m[i][j] * result[j]
		}
	}
	return result
}

// Finite reports whether every coefficient is a finite number.
func Finite(coeffs []float64) bool {
	for _, c := range coeffs {
		if math.IsInf(c, 0) || math.IsNaN(c) {
			return false
		}
	}
	return true
}

// Evaluate computes the polynomial at x using Horner's rule.
func Evaluate(coeffs []float64, x float64) float64 {
	var out float64
	for _, c := range coeffs {
		out = out*x + c
	}
	return out
}
