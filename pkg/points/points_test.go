package points

import (
	"errors"
	"testing"
)

func TestSelectSmallestAscending(t *testing.T) {
	s := NewStore()
	for _, p := range []Point{{X: 6, Y: 60}, {X: 2, Y: 20}, {X: 9, Y: 90}, {X: 1, Y: 10}, {X: 3, Y: 30}} {
		s.Put(p)
	}

	got, err := Select(s, 3)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	want := []Point{{X: 1, Y: 10}, {X: 2, Y: 20}, {X: 3, Y: 30}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSelectAll(t *testing.T) {
	s := NewStore()
	s.Put(Point{X: 10, Y: 1})
	s.Put(Point{X: 4, Y: 2})

	got, err := Select(s, 2)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if got[0].X != 4 || got[1].X != 10 {
		t.Errorf("Expected ascending order, got %+v", got)
	}
}

func TestSelectInsufficient(t *testing.T) {
	s := NewStore()
	s.Put(Point{X: 1, Y: 1})
	s.Put(Point{X: 2, Y: 4})

	_, err := Select(s, 3)
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("Expected ErrInsufficientPoints, got %v", err)
	}
}

func TestSelectRejectsNonPositiveK(t *testing.T) {
	s := NewStore()
	s.Put(Point{X: 1, Y: 1})
	if _, err := Select(s, 0); err == nil {
		t.Error("Select with k=0 should fail")
	}
}

func TestPutOverwritesDuplicateX(t *testing.T) {
	s := NewStore()
	s.Put(Point{X: 5, Y: 1})
	s.Put(Point{X: 5, Y: 2})

	if s.Len() != 1 {
		t.Fatalf("Expected 1 point after duplicate put, got %d", s.Len())
	}
	if got := s.Sorted()[0].Y; got != 2 {
		t.Errorf("Expected later value to win, got %d", got)
	}
}
