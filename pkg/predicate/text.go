package predicate

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// IsAlpha reports whether s is non-empty and contains only letters (a-zA-Z).
func IsAlpha(s string) bool {
	return alphaRegex.MatchString(s)
}

// IsAlphanumeric reports whether s is non-empty and contains only letters and digits.
func IsAlphanumeric(s string) bool {
	return alphanumericRegex.MatchString(s)
}

// IsASCII reports whether s is non-empty and contains ASCII characters only.
func IsASCII(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// IsMultibyte reports whether s contains at least one character outside ASCII.
func IsMultibyte(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return true
		}
	}
	return false
}

// IsSurrogatePair reports whether s contains a character that needs a UTF-16
// surrogate pair, i.e. one outside the Basic Multilingual Plane.
func IsSurrogatePair(s string) bool {
	for _, r := range s {
		if r == utf8.RuneError {
			continue
		}
		if r > 0xFFFF {
			return true
		}
	}
	return false
}

// Casers keep state between calls, so a fresh one is created per check.

// IsLowercase reports whether s is unchanged by lowercasing.
func IsLowercase(s string) bool {
	return cases.Lower(language.Und).String(s) == s
}

// IsUppercase reports whether s is unchanged by uppercasing.
func IsUppercase(s string) bool {
	return cases.Upper(language.Und).String(s) == s
}

func isFullWidthRune(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return true
	default:
		return false
	}
}

func isHalfWidthRune(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianHalfwidth, width.EastAsianNarrow:
		return true
	default:
		return false
	}
}

// IsFullWidth reports whether s contains at least one full-width character.
func IsFullWidth(s string) bool {
	for _, r := range s {
		if isFullWidthRune(r) {
			return true
		}
	}
	return false
}

// IsHalfWidth reports whether s contains at least one half-width character.
func IsHalfWidth(s string) bool {
	for _, r := range s {
		if isHalfWidthRune(r) {
			return true
		}
	}
	return false
}

// IsVariableWidth reports whether s mixes full-width and half-width characters.
func IsVariableWidth(s string) bool {
	var full, half bool
	for _, r := range s {
		full = full || isFullWidthRune(r)
		half = half || isHalfWidthRune(r)
		if full && half {
			return true
		}
	}
	return false
}

// IsBoolean reports whether s is one of "true", "false", "1" or "0".
func IsBoolean(s string) bool {
	switch s {
	case "true", "false", "1", "0":
		return true
	default:
		return false
	}
}
