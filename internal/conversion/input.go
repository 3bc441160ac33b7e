package conversion

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"tempconv/internal/models"
)

// ErrInvalidInput is the only domain error: a value that does not parse or
// is not finite, or a scale that is not supported.
var ErrInvalidInput = errors.New("invalid input: enter a valid number")

const displayPrecision = 2

// ParseInput parses a user-typed temperature. Zero is valid.
func ParseInput(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidInput
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	if err := ValidateInput(v); err != nil {
		return 0, err
	}
	return v, nil
}

// ValidateInput rejects NaN and infinities.
func ValidateInput(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalidInput, v)
	}
	return nil
}

// ValidateScales checks both scales of a conversion request.
func ValidateScales(from, to models.Scale) error {
	if !from.Valid() {
		return fmt.Errorf("%w: source %w %q", ErrInvalidInput, models.ErrUnknownScale, from)
	}
	if !to.Valid() {
		return fmt.Errorf("%w: target %w %q", ErrInvalidInput, models.ErrUnknownScale, to)
	}
	return nil
}

// FormatValue renders v with two decimals.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', displayPrecision, 64)
}

// RoundDisplay rounds v to the precision shown by FormatValue.
func RoundDisplay(v float64) float64 {
	r, err := strconv.ParseFloat(FormatValue(v), 64)
	if err != nil {
		return v
	}
	return r
}
