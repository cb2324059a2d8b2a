package format

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Syntax selects the document encoding.
type Syntax int

const (
	SyntaxJSON Syntax = iota
	SyntaxYAML
)

// SyntaxFor picks the syntax from a file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func SyntaxFor(path string) Syntax {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SyntaxYAML
	}
	return SyntaxJSON
}

// Read parses a share document from r. Object keys other than "keys" are
// decimal x coordinates; each maps to an object with "base" and "value".
func Read(r io.Reader, syntax Syntax) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var tree any
	switch syntax {
	case SyntaxYAML:
		err = yaml.Unmarshal(raw, &tree)
	default:
		err = json.Unmarshal(raw, &tree)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	root, err := cast.ToStringMapE(tree)
	if err != nil {
		return nil, fmt.Errorf("%w: top level must be an object", ErrFormat)
	}

	doc := &Document{}
	if err := readKeys(root, &doc.Keys); err != nil {
		return nil, err
	}

	// Visit keys in string order so that, when two keys name the same x
	// ("01" and "1"), the later one in that order is the one kept.
	keys := make([]string, 0, len(root))
	for key := range root {
		if key != KeysField {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		p, err := readPoint(key, root[key])
		if err != nil {
			return nil, err
		}
		doc.Points = append(doc.Points, p)
	}
	doc.sortPoints()

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func readKeys(root map[string]any, keys *Keys) error {
	node, ok := root[KeysField]
	if !ok {
		return fmt.Errorf("%w: missing %q object", ErrFormat, KeysField)
	}
	obj, err := cast.ToStringMapE(node)
	if err != nil {
		return fmt.Errorf("%w: %q must be an object", ErrFormat, KeysField)
	}

	if keys.N, err = requiredInt(obj, "n"); err != nil {
		return err
	}
	if keys.K, err = requiredInt(obj, "k"); err != nil {
		return err
	}
	return nil
}

func requiredInt(obj map[string]any, field string) (int, error) {
	v, ok := obj[field]
	if !ok {
		return 0, fmt.Errorf("%w: missing %s.%s", ErrFormat, KeysField, field)
	}
	// Decimal only for strings: cast would read "010" as octal.
	if str, isString := v.(string); isString {
		n, err := strconv.Atoi(strings.TrimSpace(str))
		if err != nil {
			return 0, fmt.Errorf("%w: %s.%s %q is not a decimal number", ErrFormat, KeysField, field, str)
		}
		return n, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s.%s: %v", ErrFormat, KeysField, field, err)
	}
	return n, nil
}

func readPoint(key string, node any) (EncodedPoint, error) {
	// Decimal only: cast would read a leading zero as octal.
	x, err := strconv.Atoi(key)
	if err != nil {
		return EncodedPoint{}, fmt.Errorf("%w: key %q is not a decimal x coordinate", ErrFormat, key)
	}

	obj, err := cast.ToStringMapE(node)
	if err != nil {
		return EncodedPoint{}, fmt.Errorf("%w: point %q must be an object", ErrFormat, key)
	}

	baseNode, ok := obj["base"]
	if !ok {
		return EncodedPoint{}, fmt.Errorf("%w: point %q has no base", ErrFormat, key)
	}
	baseStr, err := cast.ToStringE(baseNode)
	if err != nil {
		return EncodedPoint{}, fmt.Errorf("%w: point %q base: %v", ErrFormat, key, err)
	}
	base, err := strconv.Atoi(baseStr)
	if err != nil {
		return EncodedPoint{}, fmt.Errorf("%w: point %q base %q is not a number", ErrFormat, key, baseStr)
	}

	valueNode, ok := obj["value"]
	if !ok {
		return EncodedPoint{}, fmt.Errorf("%w: point %q has no value", ErrFormat, key)
	}
	digits, err := cast.ToStringE(valueNode)
	if err != nil {
		return EncodedPoint{}, fmt.Errorf("%w: point %q value: %v", ErrFormat, key, err)
	}

	return EncodedPoint{X: x, Base: base, Digits: digits}, nil
}
