package numformat

// Validator classifies candidate strings against a single Format.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	format Format
}

// NewValidator returns a Validator for f.
func NewValidator(f Format) *Validator {
	return &Validator{format: f}
}

// NewValidatorFor constructs the Format and its Validator in one step.
func NewValidatorFor(precision, scale int, opts ...Option) (*Validator, error) {
	f, err := New(precision, scale, opts...)
	if err != nil {
		return nil, err
	}
	return NewValidator(f), nil
}

// Format returns the validator's format, the zero Format for a nil Validator.
func (v *Validator) Format() Format {
	if v == nil {
		return Format{}
	}
	return v.format
}

// IsValid reports whether value is present and conforms to the format.
// A nil value or a nil Validator is a negative result, not an error.
func (v *Validator) IsValid(value *string) bool {
	if v == nil || value == nil {
		return false
	}
	return v.format.IsValid(*value)
}

// IsValidString reports whether value conforms to the format.
func (v *Validator) IsValidString(value string) bool {
	if v == nil {
		return false
	}
	return v.format.IsValid(value)
}

// IsValid reports whether value is present and conforms to f.
func IsValid(value *string, f Format) bool {
	return NewValidator(f).IsValid(value)
}
