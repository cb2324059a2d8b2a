package format

import (
	"errors"
	"fmt"
	"sort"
)

// KeysField is the reserved top-level key holding n and k.
const KeysField = "keys"

// ErrFormat is matched by every structural problem found in a document.
var ErrFormat = errors.New("invalid document")

// Keys carries the share counts from the "keys" object.
type Keys struct {
	// N is the number of shares the document claims to carry.
	N int `json:"n" yaml:"n"`

	// K is the number of shares needed, one more than the polynomial degree.
	K int `json:"k" yaml:"k"`
}

// EncodedPoint is a share as it appears in the document, before decoding.
type EncodedPoint struct {
	X      int
	Base   int
	Digits string
}

// Document is the parsed input: counts plus the encoded shares in ascending X.
type Document struct {
	Keys   Keys
	Points []EncodedPoint
}

// Validate checks the share counts.
func (d *Document) Validate() error {
	if d.Keys.K < 1 {
		return fmt.Errorf("%w: k must be at least 1, got %d", ErrFormat, d.Keys.K)
	}
	if d.Keys.K > d.Keys.N {
		return fmt.Errorf("%w: k (%d) cannot exceed n (%d)", ErrFormat, d.Keys.K, d.Keys.N)
	}
	return nil
}

// sortPoints orders by X. The sort is stable so repeated X values keep
// their read order.
func (d *Document) sortPoints() {
	sort.SliceStable(d.Points, func(i, j int) bool { return d.Points[i].X < d.Points[j].X })
}
