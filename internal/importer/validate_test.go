package importer

import (
	"errors"
	"math"
	"testing"

	"github.com/piwi3910/giftwrap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDimension_Accepts(t *testing.T) {
	for _, raw := range []string{"1", " 10 ", "0.5", "500", "250.75"} {
		_, err := ValidateDimension(raw, 500)
		assert.NoError(t, err, raw)
	}
	v, err := ValidateDimension("12.5", 500)
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)
}

func TestValidateDimension_Rejects(t *testing.T) {
	tests := []struct {
		raw     string
		want    error
		message string
	}{
		{"12cm", ErrDimensionNotNumeric, "Gift Dimensions Can't Contain Letters. Please Only Enter Numerical Values."},
		{"NaN", ErrDimensionNotNumeric, "Gift Dimensions Can't Contain Letters. Please Only Enter Numerical Values."},
		{"1..2", ErrDimensionNotNumeric, "Gift Dimensions Must be a Number. Please Only Enter Numerical Values."},
		{"", ErrDimensionEmpty, "Gift Dimensions Can't be Empty, Zero or Negative. Please Enter a Value Between 1 and 500."},
		{"0", ErrDimensionEmpty, "Gift Dimensions Can't be Empty, Zero or Negative. Please Enter a Value Between 1 and 500."},
		{"-3", ErrDimensionNegative, "Gift Dimensions Can't be Negative. Please Enter a Value Between 1 and 500."},
		{"500.1", ErrDimensionTooLarge, "Gift Dimensions Exceed 500 cm. Please Enter a Value Between 1 and 500."},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := ValidateDimension(tt.raw, 500)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidateGift(t *testing.T) {
	assert.NoError(t, ValidateGift(model.Gift{Shape: model.ShapeCube, X: 10, Y: math.NaN(), Z: -1}, 500))
	assert.NoError(t, ValidateGift(model.Gift{Shape: model.ShapeCuboid, X: 1, Y: 2, Z: 3}, 500))

	err := ValidateGift(model.Gift{Shape: model.ShapeCylinder, X: 4, Y: 0}, 500)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionEmpty)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Height", verr.Field)
	assert.Contains(t, err.Error(), "Height: Gift Dimensions Can't be Empty")

	err = ValidateGift(model.Gift{Shape: model.ShapeCuboid, X: 1, Y: 2, Z: math.Inf(1)}, 500)
	assert.ErrorIs(t, err, ErrDimensionNotNumeric)
}
