package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numfmt/pkg/numformat"
	"github.com/dmitrymomot/numfmt/pkg/validator"
)

func strPtr(s string) *string { return &s }

func TestNumberFormat(t *testing.T) {
	t.Parallel()

	f := numformat.MustNew(4, 2)

	t.Run("passes for valid numbers", func(t *testing.T) {
		for _, value := range []string{"0", "+1.23", "-1,23", "12.3", "1234"} {
			rule := validator.NumberFormat("amount", value, f)
			assert.True(t, rule.Check(), value)
		}
	})

	t.Run("fails for invalid numbers", func(t *testing.T) {
		for _, value := range []string{"", "1.", "12345", "1.234", "+-1", "1 "} {
			rule := validator.NumberFormat("amount", value, f)
			assert.False(t, rule.Check(), value)
		}
	})

	t.Run("error metadata", func(t *testing.T) {
		rule := validator.NumberFormat("amount", "x", f)
		assert.Equal(t, "amount", rule.Error.Field)
		assert.Equal(t, "must be a number of format N(4,2)", rule.Error.Message)
		assert.Equal(t, "validation.number_format", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{
			"field":     "amount",
			"format":    "N(4,2)",
			"precision": 4,
			"scale":     2,
		}, rule.Error.TranslationValues)
	})
}

func TestNumberFormatPtr(t *testing.T) {
	t.Parallel()

	f := numformat.MustNew(17, 0, numformat.OnlyPositive())

	assert.False(t, validator.NumberFormatPtr("qty", nil, f).Check())
	assert.False(t, validator.NumberFormatPtr("qty", strPtr(""), f).Check())
	assert.False(t, validator.NumberFormatPtr("qty", strPtr("-0"), f).Check())
	assert.True(t, validator.NumberFormatPtr("qty", strPtr("+0"), f).Check())
	assert.Equal(t, "validation.number_format", validator.NumberFormatPtr("qty", nil, f).Error.TranslationKey)
}

func TestOptionalNumberFormat(t *testing.T) {
	t.Parallel()

	f := numformat.MustNew(3, 2)

	assert.True(t, validator.OptionalNumberFormat("discount", nil, f).Check())
	assert.True(t, validator.OptionalNumberFormat("discount", strPtr(""), f).Check())
	assert.True(t, validator.OptionalNumberFormat("discount", strPtr("0.00"), f).Check())
	assert.False(t, validator.OptionalNumberFormat("discount", strPtr("00.00"), f).Check())
	assert.False(t, validator.OptionalNumberFormat("discount", strPtr("abc"), f).Check())
}

func TestNumberPrecision(t *testing.T) {
	t.Parallel()

	f := numformat.MustNew(3, 2)

	assert.True(t, validator.NumberPrecision("n", "0.00", f).Check())
	assert.False(t, validator.NumberPrecision("n", "00.00", f).Check())
	assert.False(t, validator.NumberPrecision("n", "-0.00", f).Check())
	assert.True(t, validator.NumberPrecision("n", "not a number", f).Check())
	assert.True(t, validator.NumberPrecision("n", "", f).Check())

	rule := validator.NumberPrecision("n", "1234", f)
	assert.Equal(t, "must have at most 3 digits including sign", rule.Error.Message)
	assert.Equal(t, "validation.number_precision", rule.Error.TranslationKey)
}

func TestNumberScale(t *testing.T) {
	t.Parallel()

	f := numformat.MustNew(17, 2)

	assert.True(t, validator.NumberScale("n", "1", f).Check())
	assert.True(t, validator.NumberScale("n", "1,25", f).Check())
	assert.False(t, validator.NumberScale("n", "0.000", f).Check())
	assert.True(t, validator.NumberScale("n", "0.", f).Check())

	rule := validator.NumberScale("n", "0.000", f)
	assert.Equal(t, "must have at most 2 decimal places", rule.Error.Message)
	assert.Equal(t, "validation.number_scale", rule.Error.TranslationKey)
}

func TestNonNegativeNumber(t *testing.T) {
	t.Parallel()

	f := numformat.MustNew(17, 2)

	assert.True(t, validator.NonNegativeNumber("n", "+1", f).Check())
	assert.True(t, validator.NonNegativeNumber("n", "1", f).Check())
	assert.False(t, validator.NonNegativeNumber("n", "-0", f).Check())
	assert.True(t, validator.NonNegativeNumber("n", "--1", f).Check())

	rule := validator.NonNegativeNumber("n", "-1", f)
	require.Equal(t, "validation.number_non_negative", rule.Error.TranslationKey)
	assert.Equal(t, "must not be negative", rule.Error.Message)
}
