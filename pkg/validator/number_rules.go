package validator

import (
	"fmt"

	"github.com/dmitrymomot/numfmt/pkg/numformat"
)

func numberFormatError(field, key, message string, f numformat.Format) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        message,
		TranslationKey: key,
		TranslationValues: map[string]any{
			"field":     field,
			"format":    f.String(),
			"precision": f.Precision(),
			"scale":     f.Scale(),
		},
	}
}

// NumberFormat validates that value is a number of format f.
func NumberFormat(field, value string, f numformat.Format) Rule {
	return Rule{
		Check: func() bool {
			return f.IsValid(value)
		},
		Error: numberFormatError(field, "validation.number_format",
			fmt.Sprintf("must be a number of format %s", f), f),
	}
}

// NumberFormatPtr is NumberFormat for optional inputs; a nil value fails.
func NumberFormatPtr(field string, value *string, f numformat.Format) Rule {
	return Rule{
		Check: func() bool {
			return numformat.IsValid(value, f)
		},
		Error: numberFormatError(field, "validation.number_format",
			fmt.Sprintf("must be a number of format %s", f), f),
	}
}

// OptionalNumberFormat passes for a nil or empty value and otherwise behaves like NumberFormat.
func OptionalNumberFormat(field string, value *string, f numformat.Format) Rule {
	return Rule{
		Check: func() bool {
			if value == nil || *value == "" {
				return true
			}
			return f.IsValid(*value)
		},
		Error: numberFormatError(field, "validation.number_format",
			fmt.Sprintf("must be a number of format %s", f), f),
	}
}

// The single-limit rules below pass on empty or malformed values so that
// NumberFormat reports the shape problem only once.

// NumberPrecision validates that the sign and digits of value fit in the format's precision.
func NumberPrecision(field, value string, f numformat.Format) Rule {
	return Rule{
		Check: func() bool {
			n, ok := f.Parse(value)
			return !ok || n.Len() <= f.Precision()
		},
		Error: numberFormatError(field, "validation.number_precision",
			fmt.Sprintf("must have at most %d digits including sign", f.Precision()), f),
	}
}

// NumberScale validates that value has at most scale fractional digits.
func NumberScale(field, value string, f numformat.Format) Rule {
	return Rule{
		Check: func() bool {
			n, ok := f.Parse(value)
			return !ok || n.FracLen() <= f.Scale()
		},
		Error: numberFormatError(field, "validation.number_scale",
			fmt.Sprintf("must have at most %d decimal places", f.Scale()), f),
	}
}

// NonNegativeNumber validates that value carries no '-' sign.
func NonNegativeNumber(field, value string, f numformat.Format) Rule {
	return Rule{
		Check: func() bool {
			n, ok := f.Parse(value)
			return !ok || !n.Negative()
		},
		Error: numberFormatError(field, "validation.number_non_negative",
			"must not be negative", f),
	}
}
