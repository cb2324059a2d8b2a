// Package shamir writes share documents for integer polynomials. Shares are
// plain int64 evaluations at x = 1..n, not field elements, so fewer than k
// shares still leak information about the secret.
package shamir

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/Beastly713/polysecret/pkg/basecodec"
	"github.com/Beastly713/polysecret/pkg/format"
)

// Polynomial has integer coefficients, highest power first. The last
// coefficient is the intercept, i.e. the secret.
type Polynomial struct {
	Coefficients []int64
}

// NewPolynomial wraps coeffs (highest power first).
func NewPolynomial(coeffs []int64) (Polynomial, error) {
	if len(coeffs) == 0 {
		return Polynomial{}, fmt.Errorf("polynomial needs at least one coefficient")
	}
	return Polynomial{Coefficients: append([]int64(nil), coeffs...)}, nil
}

// RandomPolynomial constructs a random polynomial of the given degree but
// with the provided intercept. The other coefficients are drawn from [0, limit).
func RandomPolynomial(intercept int64, degree int, limit int64) (Polynomial, error) {
	if degree < 0 {
		return Polynomial{}, fmt.Errorf("degree cannot be negative")
	}
	if limit < 1 {
		return Polynomial{}, fmt.Errorf("coefficient limit must be positive")
	}

	p := Polynomial{Coefficients: make([]int64, degree+1)}
	p.Coefficients[degree] = intercept

	bound := big.NewInt(limit)
	for i := 0; i < degree; i++ {
		c, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return p, err
		}
		p.Coefficients[i] = c.Int64()
	}
	return p, nil
}

// Degree is the highest power with a stored coefficient.
func (p Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

// Evaluate returns the value of the polynomial for the given x. Arithmetic
// is plain int64 and wraps on overflow.
func (p Polynomial) Evaluate(x int64) int64 {
	var out int64
	for _, c := range p.Coefficients {
		out = out*x + c
	}
	return out
}

// Split evaluates p at x = 1..parts and encodes each value in a base taken
// from bases in turn. Any degree+1 of the resulting shares recover p.
func Split(p Polynomial, parts int, bases []int) (*format.Document, error) {
	threshold := p.Degree() + 1
	if threshold < 1 {
		return nil, fmt.Errorf("polynomial has no coefficients")
	}
	if parts < threshold {
		return nil, fmt.Errorf("parts (%d) cannot be less than threshold (%d)", parts, threshold)
	}
	if len(bases) == 0 {
		bases = []int{10}
	}
	for _, b := range bases {
		if err := basecodec.ValidBase(b); err != nil {
			return nil, err
		}
	}

	doc := &format.Document{
		Keys:   format.Keys{N: parts, K: threshold},
		Points: make([]format.EncodedPoint, 0, parts),
	}

	for i := 0; i < parts; i++ {
		x := i + 1
		base := bases[i%len(bases)]
		digits, err := basecodec.Encode(p.Evaluate(int64(x)), base)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", x, err)
		}
		doc.Points = append(doc.Points, format.EncodedPoint{X: x, Base: base, Digits: digits})
	}

	return doc, nil
}
