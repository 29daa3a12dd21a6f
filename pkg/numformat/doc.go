// Package numformat validates textual values against the fixed decimal-number
// format N(precision, scale) used in structured data interchange.
//
// A value is valid when it matches the grammar
//
//	[+-]? digit+ ([.,] digit+)?
//
// over the whole string, the sign plus all integer and fractional digits fit in
// precision, the fractional digits fit in scale and, for non-negative formats,
// the sign is not '-'. The separator is never counted. Values are only
// classified; they are never converted to numbers.
//
// # Usage
//
//	f, err := numformat.New(4, 2)
//	if err != nil {
//		// precision <= 0, scale < 0 or scale >= precision
//	}
//	f.IsValid("+1.23") // true
//	f.IsValid("1,234") // false: 3 fractional digits
//
//	v := numformat.NewValidator(numformat.MustNew(17, 0, numformat.OnlyPositive()))
//	v.IsValid(nil)           // false
//	v.IsValidString("-0")    // false
//
// # Error Handling
//
// Construction errors wrap ErrInvalidConfiguration together with
// ErrInvalidPrecision, ErrInvalidScale or ErrUnknownDigitProfile, so callers
// can use errors.Is. Invalid input is never an error: IsValid returns false.
// Format.Check returns the reason (ErrEmpty, ErrMalformed, ErrPrecisionExceeded,
// ErrScaleExceeded, ErrNegative) for diagnostics.
//
// # Digit Profiles
//
// Only ASCII '0'-'9' are digits by default. WithUnicodeDigits accepts any
// Unicode Nd rune and WithWidthFolding folds fullwidth forms to ASCII before
// scanning. Both are explicit opt-ins.
//
// # Configuration
//
// LoadConfig reads NUMFMT_PRECISION, NUMFMT_SCALE, NUMFMT_ONLY_POSITIVE,
// NUMFMT_DIGITS and NUMFMT_FOLD_WIDTH, honouring a .env file; LoadConfigFrom
// reads explicit .env files. LoadProfiles reads named formats from a single
// YAML document and rejects unknown keys.
//
// Formats, validators and loaded profiles are immutable and safe for
// concurrent use.
package numformat
