package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ValidationError describes a single failed rule with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors collects the failures of one Apply call.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := lo.Map(ve, func(err ValidationError, _ int) string {
		return fmt.Sprintf("%s: %s", err.Field, err.Message)
	})
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) hold for any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	return lo.ContainsBy(ve, func(err ValidationError) bool {
		return err.Field == field
	})
}

// Get returns the messages reported for field.
func (ve ValidationErrors) Get(field string) []string {
	return lo.FilterMap(ve, func(err ValidationError, _ int) (string, bool) {
		return err.Message, err.Field == field
	})
}

// GetErrors returns the full errors reported for field, translation data included.
func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	return lo.Filter(ve, func(err ValidationError, _ int) bool {
		return err.Field == field
	})
}

// Fields returns the failed field names in first-failure order.
func (ve ValidationErrors) Fields() []string {
	return lo.Uniq(lo.Map(ve, func(err ValidationError, _ int) string {
		return err.Field
	}))
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates every rule and returns the failures as ValidationErrors,
// or nil when all rules pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs.Add(rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, if any.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var verrs ValidationErrors
	return errors.As(err, &verrs)
}
