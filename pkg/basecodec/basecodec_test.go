package basecodec

import (
	"errors"
	"testing"
)

func TestDecodeKnownValues(t *testing.T) {
	cases := []struct {
		digits string
		base   int
		want   int64
	}{
		{"FF", 16, 255},
		{"Z", 36, 35},
		{"10", 2, 2},
		{"111", 2, 7},
		{"4257", 8, 2223},
		{"38", 10, 38},
		{"ZZ", 36, 1295},
		{"", 10, 0},
	}

	for _, tc := range cases {
		got, err := Decode(tc.digits, tc.base)
		if err != nil {
			t.Fatalf("Decode(%q, %d) failed: %v", tc.digits, tc.base, err)
		}
		if got != tc.want {
			t.Errorf("Decode(%q, %d) = %d, want %d", tc.digits, tc.base, got, tc.want)
		}
	}
}

func TestDecodeMatchesPositionalNotation(t *testing.T) {
	for base := MinBase; base <= MaxBase; base++ {
		// Every digit of the base, highest first.
		digits := make([]byte, 0, base)
		var want int64
		for v := base - 1; v >= 0; v-- {
			c := byte('0' + v)
			if v >= 10 {
				c = byte('A' + v - 10)
			}
			digits = append(digits, c)
			if len(digits) <= 4 {
				want = want*int64(base) + int64(v)
			}
		}

		got, err := Decode(string(digits[:min(4, len(digits))]), base)
		if err != nil {
			t.Fatalf("base %d: %v", base, err)
		}
		if got != want {
			t.Errorf("base %d: got %d, want %d", base, got, want)
		}
	}
}

func TestDecodeRejectsInvalidDigits(t *testing.T) {
	for _, digits := range []string{"ff", "1-2", "A B", "é", "z"} {
		_, err := Decode(digits, 36)
		if !errors.Is(err, ErrInvalidDigit) {
			t.Errorf("Decode(%q): expected ErrInvalidDigit, got %v", digits, err)
		}
		if !errors.Is(err, ErrDecode) {
			t.Errorf("Decode(%q): expected error to match ErrDecode", digits)
		}
	}
}

func TestDecodeRejectsDigitOutOfRange(t *testing.T) {
	cases := []struct {
		digits string
		base   int
	}{
		{"2", 2},
		{"19", 9},
		{"G", 16},
		{"A", 10},
	}
	for _, tc := range cases {
		_, err := Decode(tc.digits, tc.base)
		if !errors.Is(err, ErrDigitOutOfRange) {
			t.Errorf("Decode(%q, %d): expected ErrDigitOutOfRange, got %v", tc.digits, tc.base, err)
		}
	}
}

func TestDecodeRejectsInvalidBase(t *testing.T) {
	for _, base := range []int{-1, 0, 1, 37} {
		if _, err := Decode("1", base); !errors.Is(err, ErrInvalidBase) {
			t.Errorf("base %d: expected ErrInvalidBase, got %v", base, err)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	values := []int64{0, 1, 35, 255, 1295, 123456789, 1 << 62}
	for base := MinBase; base <= MaxBase; base++ {
		for _, v := range values {
			s, err := Encode(v, base)
			if err != nil {
				t.Fatalf("Encode(%d, %d): %v", v, base, err)
			}
			back, err := Decode(s, base)
			if err != nil {
				t.Fatalf("Decode(%q, %d): %v", s, base, err)
			}
			if back != v {
				t.Errorf("base %d: %d encoded as %q decoded to %d", base, v, s, back)
			}
		}
	}

	if _, err := Encode(-5, 10); err == nil {
		t.Error("Encode should reject negative values")
	}
}
