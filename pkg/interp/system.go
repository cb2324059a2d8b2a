package interp

import (
	"math"

	"github.com/Beastly713/polysecret/pkg/points"
)

// System is a k x (k+1) augmented matrix. Column j < k holds the
// coefficient of x^(k-1-j); column k holds the right-hand side.
type System [][]float64

// Size returns k, the number of equations.
func (m System) Size() int {
	return len(m)
}

// Build constructs the Vandermonde system whose solution is the unique
// polynomial of degree len(pts)-1 through pts. Powers use math.Pow, so
// precision degrades for large x or k.
func Build(pts []points.Point) System {
	k := len(pts)
	m := make(System, k)
	for i, p := range pts {
		row := make([]float64, k+1)
		x := float64(p.X)
		for j := 0; j < k; j++ {
			row[j] = math.Pow(x, float64(k-1-j))
		}
		row[k] = float64(p.Y)
		m[i] = row
	}
	return m
}
