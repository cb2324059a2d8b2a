package points

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInsufficientPoints is returned when fewer than k points are available.
var ErrInsufficientPoints = errors.New("insufficient points provided")

// Point is a decoded share: X is the share index, Y the decoded value.
type Point struct {
	X int
	Y int64
}

// Store holds points keyed by X. Putting a point with an existing X replaces it.
type Store struct {
	byX map[int]int64
}

func NewStore() *Store {
	return &Store{byX: make(map[int]int64)}
}

// Put records p, overwriting any previous point with the same X.
func (s *Store) Put(p Point) {
	s.byX[p.X] = p.Y
}

// Len returns the number of distinct X values held.
func (s *Store) Len() int {
	return len(s.byX)
}

// Sorted returns a fresh slice of all points in ascending X order.
func (s *Store) Sorted() []Point {
	out := make([]Point, 0, len(s.byX))
	for x, y := range s.byX {
		out = append(out, Point{X: x, Y: y})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].X < out[j].X })
	return out
}

// Select returns the k points with the smallest X, ascending.
func Select(s *Store, k int) ([]Point, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be at least 1, got %d", k)
	}
	if s.Len() < k {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientPoints, k, s.Len())
	}
	return s.Sorted()[:k], nil
}
