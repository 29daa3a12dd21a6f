package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numfmt/pkg/validator"
)

func failing(field, message string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: field, Message: message},
	}
}

func passing(field string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return true },
		Error: validator.ValidationError{Field: field, Message: "unused"},
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "amount", Message: "is required"})
		assert.Equal(t, "validation failed: amount: is required", errs.Error())
	})

	t.Run("joins multiple errors in order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "amount", Message: "too long"})
		errs.Add(validator.ValidationError{Field: "rate", Message: "negative"})
		assert.Equal(t, "validation failed: amount: too long; rate: negative", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "amount", Message: "too long", TranslationKey: "a"})
	errs.Add(validator.ValidationError{Field: "rate", Message: "negative", TranslationKey: "b"})
	errs.Add(validator.ValidationError{Field: "amount", Message: "too precise", TranslationKey: "c"})

	assert.True(t, errs.Has("amount"))
	assert.False(t, errs.Has("quantity"))
	assert.Equal(t, []string{"too long", "too precise"}, errs.Get("amount"))
	assert.Empty(t, errs.Get("quantity"))
	assert.Equal(t, []string{"amount", "rate"}, errs.Fields())

	amountErrs := errs.GetErrors("amount")
	require.Len(t, amountErrs, 2)
	assert.Equal(t, "a", amountErrs[0].TranslationKey)
	assert.Equal(t, "c", amountErrs[1].TranslationKey)
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(passing("a"), passing("b")))
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(failing("a", "bad a"), passing("b"), failing("c", "bad c"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"a", "c"}, verrs.Fields())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))

	err := validator.Apply(failing("amount", "bad"))
	wrapped := fmt.Errorf("save invoice: %w", err)

	verrs := validator.ExtractValidationErrors(wrapped)
	require.NotNil(t, verrs)
	assert.Equal(t, []string{"bad"}, verrs.Get("amount"))

	assert.True(t, validator.IsValidationError(wrapped))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
	assert.False(t, validator.IsValidationError(nil))
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
}
