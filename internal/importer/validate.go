package importer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/piwi3910/giftwrap/internal/model"
)

// Dimension validation failures. Use errors.Is against a returned
// *ValidationError to tell them apart.
var (
	ErrDimensionNotNumeric = errors.New("dimension is not numeric")
	ErrDimensionEmpty      = errors.New("dimension is empty or zero")
	ErrDimensionNegative   = errors.New("dimension is negative")
	ErrDimensionTooLarge   = errors.New("dimension exceeds maximum size")
)

// ValidationError carries a message suitable for showing to the person who
// typed the value.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func rangeHint(max float64) string {
	return fmt.Sprintf("Please Enter a Value Between 1 and %s.", formatLimit(max))
}

func formatLimit(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ValidateDimension checks one typed gift length, in the order the checks
// are reported: letters, empty or zero, negative, then over max.
func ValidateDimension(raw string, max float64) (float64, error) {
	s := strings.TrimSpace(raw)

	for _, r := range s {
		if unicode.IsLetter(r) {
			return 0, &ValidationError{
				Value:   raw,
				Message: "Gift Dimensions Can't Contain Letters. Please Only Enter Numerical Values.",
				Err:     ErrDimensionNotNumeric,
			}
		}
	}

	if s == "" {
		return 0, emptyError(raw, max)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ValidationError{
			Value:   raw,
			Message: "Gift Dimensions Must be a Number. Please Only Enter Numerical Values.",
			Err:     ErrDimensionNotNumeric,
		}
	}

	switch {
	case v == 0:
		return 0, emptyError(raw, max)
	case v < 0:
		return 0, &ValidationError{
			Value:   raw,
			Message: "Gift Dimensions Can't be Negative. " + rangeHint(max),
			Err:     ErrDimensionNegative,
		}
	case v > max:
		return 0, &ValidationError{
			Value:   raw,
			Message: fmt.Sprintf("Gift Dimensions Exceed %s cm. %s", formatLimit(max), rangeHint(max)),
			Err:     ErrDimensionTooLarge,
		}
	}
	return v, nil
}

func emptyError(raw string, max float64) error {
	return &ValidationError{
		Value:   raw,
		Message: "Gift Dimensions Can't be Empty, Zero or Negative. " + rangeHint(max),
		Err:     ErrDimensionEmpty,
	}
}

// ValidateGift runs ValidateDimension over every length the gift's shape
// uses. Lengths the shape ignores are not checked.
func ValidateGift(g model.Gift, max float64) error {
	names := g.Shape.DimensionNames()
	for i, name := range names {
		v, err := g.Dimension(i)
		if err != nil {
			return err
		}
		if _, err := ValidateDimension(strconv.FormatFloat(v, 'f', -1, 64), max); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				verr.Field = name
			}
			return err
		}
	}
	return nil
}
