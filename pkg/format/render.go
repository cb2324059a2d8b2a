package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number formats v the way a default C++ output stream does: six
// significant digits, exponent form when needed, "inf"/"nan" for
// non-finite values.
func Number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Render lays out coefficients (highest power first) as
// "c0x^(k-1) + ... + c(k-2)x^1 = c(k-1)". The constant term goes after the
// equals sign instead of appearing as an x^0 term.
func Render(coeffs []float64) string {
	k := len(coeffs)
	if k == 0 {
		return ""
	}

	terms := make([]string, 0, k-1)
	for i := 0; i < k-1; i++ {
		terms = append(terms, fmt.Sprintf("%sx^%d", Number(coeffs[i]), k-1-i))
	}

	tail := "= " + Number(coeffs[k-1])
	if len(terms) == 0 {
		return tail
	}
	return strings.Join(terms, " + ") + " " + tail
}

// RenderStandard writes the conventional form, e.g. "3x^2 + 2x + 5".
// Zero terms are dropped and negative coefficients become subtractions.
func RenderStandard(coeffs []float64) string {
	k := len(coeffs)
	var b strings.Builder

	for i, c := range coeffs {
		if c == 0 {
			continue
		}
		power := k - 1 - i

		mag := c
		if b.Len() == 0 {
			if c < 0 {
				b.WriteString("-")
				mag = -c
			}
		} else if c < 0 {
			b.WriteString(" - ")
			mag = -c
		} else {
			b.WriteString(" + ")
		}

		num := Number(mag)
		if num == "1" && power > 0 {
			num = ""
		}
		b.WriteString(num)

		switch {
		case power == 1:
			b.WriteString("x")
		case power > 1:
			fmt.Fprintf(&b, "x^%d", power)
		}
	}

	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
