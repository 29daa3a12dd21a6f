package numformat

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// DigitProfile selects which characters count as decimal digits.
type DigitProfile string

const (
	// ASCIIDigits accepts only '0' through '9'.
	ASCIIDigits DigitProfile = "ascii"
	// UnicodeDigits accepts any rune of the Unicode Nd category (e.g. '٣', '৫').
	UnicodeDigits DigitProfile = "unicode"
)

// ParseDigitProfile converts a case-insensitive profile name into a DigitProfile.
// An empty name selects ASCIIDigits.
func ParseDigitProfile(name string) (DigitProfile, error) {
	switch DigitProfile(strings.ToLower(strings.TrimSpace(name))) {
	case "", ASCIIDigits:
		return ASCIIDigits, nil
	case UnicodeDigits:
		return UnicodeDigits, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDigitProfile, name)
	}
}

// Format describes the number format N(precision, scale).
//
// Precision bounds the sign, integer digits and fractional digits combined;
// the separator is not counted. Scale bounds the fractional digits.
// A Format is immutable once constructed; the zero value rejects every input.
type Format struct {
	precision    int32
	scale        int32
	onlyPositive bool
	digits       DigitProfile
	foldWidth    bool
}

// Option configures a Format.
type Option func(*Format)

// OnlyPositive rejects values with a leading '-'. A leading '+' stays allowed.
func OnlyPositive() Option {
	return func(f *Format) { f.onlyPositive = true }
}

// WithOnlyPositive sets the non-negative restriction explicitly.
func WithOnlyPositive(only bool) Option {
	return func(f *Format) { f.onlyPositive = only }
}

// WithDigits selects the digit profile. Unknown profiles make New fail.
func WithDigits(p DigitProfile) Option {
	return func(f *Format) { f.digits = p }
}

// WithUnicodeDigits is a shortcut for WithDigits(UnicodeDigits).
func WithUnicodeDigits() Option {
	return WithDigits(UnicodeDigits)
}

// WithWidthFolding folds fullwidth forms ('１', '＋', '．', '，', ...) to ASCII
// before the value is scanned.
func WithWidthFolding() Option {
	return func(f *Format) { f.foldWidth = true }
}

// New creates a Format with the given precision and scale.
//
// It fails with an error wrapping ErrInvalidConfiguration when precision <= 0,
// precision exceeds math.MaxInt32, scale < 0 or scale >= precision.
func New(precision, scale int, opts ...Option) (Format, error) {
	if precision <= 0 || precision > math.MaxInt32 {
		return Format{}, errors.Join(ErrInvalidConfiguration,
			fmt.Errorf("%w: got %d", ErrInvalidPrecision, precision))
	}
	if scale < 0 || scale >= precision {
		return Format{}, errors.Join(ErrInvalidConfiguration,
			fmt.Errorf("%w: got scale %d with precision %d", ErrInvalidScale, scale, precision))
	}

	f := Format{
		precision: int32(precision),
		scale:     int32(scale),
		digits:    ASCIIDigits,
	}
	for _, opt := range opts {
		opt(&f)
	}

	switch f.digits {
	case ASCIIDigits, UnicodeDigits:
	default:
		return Format{}, errors.Join(ErrInvalidConfiguration,
			fmt.Errorf("%w: %q", ErrUnknownDigitProfile, f.digits))
	}

	return f, nil
}

// MustNew works like New but panics if the format is invalid.
// Intended for package-level format declarations.
func MustNew(precision, scale int, opts ...Option) Format {
	f, err := New(precision, scale, opts...)
	if err != nil {
		panic(fmt.Sprintf("numformat: %v", err))
	}
	return f
}

// Precision returns the maximum count of sign, integer and fractional digits.
func (f Format) Precision() int { return int(f.precision) }

// Scale returns the maximum count of fractional digits.
func (f Format) Scale() int { return int(f.scale) }

// OnlyPositive reports whether a leading '-' is rejected.
func (f Format) OnlyPositive() bool { return f.onlyPositive }

// Digits returns the digit profile.
func (f Format) Digits() DigitProfile { return f.digits }

// FoldsWidth reports whether fullwidth forms are folded before scanning.
func (f Format) FoldsWidth() bool { return f.foldWidth }

func (f Format) valid() bool {
	return f.precision > 0 && f.scale >= 0 && f.scale < f.precision
}

func (f Format) unicodeDigits() bool {
	return f.digits == UnicodeDigits
}

// String renders the format as N(m,k), or N(m) for integers.
// Non-negative formats carry a trailing '+'.
func (f Format) String() string {
	var b strings.Builder
	if f.scale == 0 {
		fmt.Fprintf(&b, "N(%d)", f.precision)
	} else {
		fmt.Fprintf(&b, "N(%d,%d)", f.precision, f.scale)
	}
	if f.onlyPositive {
		b.WriteByte('+')
	}
	return b.String()
}

// IsValid reports whether value conforms to the format.
func (f Format) IsValid(value string) bool {
	return f.Check(value) == nil
}

// Check classifies value and returns nil when it conforms to the format.
// Otherwise it returns the first failing reason: ErrEmpty, ErrMalformed,
// ErrPrecisionExceeded, ErrScaleExceeded or ErrNegative. The zero Format
// returns ErrInvalidConfiguration for every input.
func (f Format) Check(value string) error {
	if !f.valid() {
		return ErrInvalidConfiguration
	}
	if value == "" {
		return ErrEmpty
	}

	n, ok := f.Parse(value)
	if !ok {
		return ErrMalformed
	}
	if n.Len() > int(f.precision) {
		return ErrPrecisionExceeded
	}
	if n.FracLen() > int(f.scale) {
		return ErrScaleExceeded
	}
	if f.onlyPositive && n.Negative() {
		return ErrNegative
	}
	return nil
}
