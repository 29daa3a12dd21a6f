package numformat

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Number is the scanned shape of a value matching the grammar
//
//	[+-]? digit+ ([.,] digit+)?
//
// It holds the matched substrings only; the value is never interpreted numerically.
// With WithWidthFolding the substrings come from the folded value, so Integer
// and Fraction hold ASCII digits even when the input used fullwidth forms.
type Number struct {
	Sign      rune // 0, '+' or '-'
	Integer   string
	Separator rune // 0, '.' or ','
	Fraction  string
}

// Negative reports whether the value carries a '-' sign.
func (n Number) Negative() bool { return n.Sign == '-' }

// IntLen returns the number of integer digits.
func (n Number) IntLen() int { return utf8.RuneCountInString(n.Integer) }

// FracLen returns the number of fractional digits, 0 without a fraction.
func (n Number) FracLen() int { return utf8.RuneCountInString(n.Fraction) }

// Len returns the length counted against precision: the sign (if any)
// plus integer and fractional digits. The separator is not counted.
func (n Number) Len() int {
	l := n.IntLen() + n.FracLen()
	if n.Sign != 0 {
		l++
	}
	return l
}

// Parse scans value against the number grammar of the format's digit profile.
// It reports false when the whole value does not match; limits are not checked.
func (f Format) Parse(value string) (Number, bool) {
	if f.foldWidth {
		value = width.Fold.String(value)
	}
	return scan(value, f.unicodeDigits())
}

func scan(s string, unicodeDigits bool) (Number, bool) {
	var n Number
	i := 0

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		n.Sign = rune(s[i])
		i++
	}

	start := i
	i = scanDigits(s, i, unicodeDigits)
	if i == start {
		return Number{}, false
	}
	n.Integer = s[start:i]
	if i == len(s) {
		return n, true
	}

	if s[i] != '.' && s[i] != ',' {
		return Number{}, false
	}
	n.Separator = rune(s[i])
	i++

	start = i
	i = scanDigits(s, i, unicodeDigits)
	if i == start || i != len(s) {
		return Number{}, false
	}
	n.Fraction = s[start:i]

	return n, true
}

// scanDigits returns the offset of the first non-digit at or after i.
func scanDigits(s string, i int, unicodeDigits bool) int {
	for i < len(s) {
		c := s[i]
		if '0' <= c && c <= '9' {
			i++
			continue
		}
		if !unicodeDigits || c < utf8.RuneSelf {
			break
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsDigit(r) {
			break
		}
		i += size
	}
	return i
}
