package basecodec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	MinBase = 2
	MaxBase = 36
)

// ErrDecode is matched by every failure this package reports.
var ErrDecode = errors.New("decode error")

var (
	// ErrInvalidDigit indicates a character outside 0-9 and A-Z.
	ErrInvalidDigit = fmt.Errorf("%w: invalid character in base representation", ErrDecode)

	// ErrDigitOutOfRange indicates a digit whose value is not below the base.
	ErrDigitOutOfRange = fmt.Errorf("%w: digit out of range for base", ErrDecode)

	// ErrInvalidBase indicates a base outside [MinBase, MaxBase].
	ErrInvalidBase = fmt.Errorf("%w: base must be between %d and %d", ErrDecode, MinBase, MaxBase)
)

// ValidBase reports an error if base cannot be used for decoding.
func ValidBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w: got %d", ErrInvalidBase, base)
	}
	return nil
}

// digitValue maps a single character to its value. Lowercase letters are rejected.
func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// Decode evaluates digits as a positional number in the given base.
// The accumulator is a plain int64: values beyond its range wrap silently.
func Decode(digits string, base int) (int64, error) {
	if err := ValidBase(base); err != nil {
		return 0, err
	}

	var result int64
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		v, ok := digitValue(c)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, c)
		}
		if v >= base {
			return 0, fmt.Errorf("%w: digit %q in base %d", ErrDigitOutOfRange, c, base)
		}
		result = result*int64(base) + int64(v)
	}
	return result, nil
}

// Encode is the inverse of Decode for non-negative values.
func Encode(value int64, base int) (string, error) {
	if err := ValidBase(base); err != nil {
		return "", err
	}
	if value < 0 {
		return "", fmt.Errorf("cannot encode negative value %d", value)
	}
	return strings.ToUpper(strconv.FormatInt(value, base)), nil
}
