package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/Beastly713/polysecret/pkg/basecodec"
	"github.com/Beastly713/polysecret/pkg/format"
	"github.com/Beastly713/polysecret/pkg/interp"
	"github.com/Beastly713/polysecret/pkg/points"
)

// ErrIO marks failures to open or read the input document.
var ErrIO = errors.New("failed to open input")

// Options tunes how a reconstruction treats degenerate systems.
type Options struct {
	// Strict turns a non-finite solution into interp.ErrSingularSystem
	// instead of returning Inf/NaN coefficients.
	Strict bool
}

// Result holds everything a reconstruction produced.
type Result struct {
	Keys     format.Keys
	Selected []points.Point

	// Coefficients are ordered highest power first; the last one is the secret.
	Coefficients []float64
}

// Secret returns the constant term, p(0).
func (r *Result) Secret() float64 {
	return r.Coefficients[len(r.Coefficients)-1]
}

// DecodePoints decodes every share in doc into a store.
func DecodePoints(doc *format.Document) (*points.Store, error) {
	store := points.NewStore()
	for _, ep := range doc.Points {
		y, err := basecodec.Decode(ep.Digits, ep.Base)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", ep.X, err)
		}
		store.Put(points.Point{X: ep.X, Y: y})
	}
	return store, nil
}

// Interpolate solves for the polynomial through pts.
func Interpolate(pts []points.Point, opts Options) ([]float64, error) {
	coeffs := interp.Solve(interp.Build(pts))
	if opts.Strict && !interp.Finite(coeffs) {
		return nil, interp.ErrSingularSystem
	}
	return coeffs, nil
}

// Reconstruct orchestrates the flow: Decode -> Select -> Build -> Solve
func Reconstruct(doc *format.Document, opts Options) (*Result, error) {
	store, err := DecodePoints(doc)
	if err != nil {
		return nil, err
	}

	selected, err := points.Select(store, doc.Keys.K)
	if err != nil {
		return nil, err
	}

	coeffs, err := Interpolate(selected, opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		Keys:         doc.Keys,
		Selected:     selected,
		Coefficients: coeffs,
	}, nil
}

// ReconstructFile reads the document at path and reconstructs it.
func ReconstructFile(path string, opts Options) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrIO, path, err)
	}

	doc, err := format.Read(bytes.NewReader(raw), format.SyntaxFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return Reconstruct(doc, opts)
}
