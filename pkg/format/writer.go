package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Writer serializes share documents.
type Writer struct {
	w io.Writer
}

// NewWriter creates a new Writer around an io.Writer (usually an os.File).
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

type pointBody struct {
	Base  string `json:"base" yaml:"base"`
	Value string `json:"value" yaml:"value"`
}

// Write emits doc in the given syntax. Bases are written as numeric strings.
func (dw *Writer) Write(doc *Document, syntax Syntax) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("refusing to write: %w", err)
	}

	tree := map[string]any{KeysField: doc.Keys}
	for _, p := range doc.Points {
		key := strconv.Itoa(p.X)
		if _, dup := tree[key]; dup {
			return fmt.Errorf("%w: duplicate x %d", ErrFormat, p.X)
		}
		tree[key] = pointBody{Base: strconv.Itoa(p.Base), Value: p.Digits}
	}

	switch syntax {
	case SyntaxYAML:
		enc := yaml.NewEncoder(dw.w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("failed to write yaml document: %w", err)
		}
		return enc.Close()
	default:
		out, err := json.MarshalIndent(tree, "", "    ")
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		if _, err := dw.w.Write(append(out, '\n')); err != nil {
			return fmt.Errorf("failed to write json document: %w", err)
		}
	}
	return nil
}
