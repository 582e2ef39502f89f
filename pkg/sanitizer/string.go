package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes chars from both ends of s, or white space when chars is empty.
func Trim(s, chars string) string {
	if chars == "" {
		return strings.TrimSpace(s)
	}
	return strings.Trim(s, chars)
}

// TrimLeft is Trim for the start of s.
func TrimLeft(s, chars string) string {
	if chars == "" {
		return strings.TrimLeftFunc(s, unicode.IsSpace)
	}
	return strings.TrimLeft(s, chars)
}

// TrimRight is Trim for the end of s.
func TrimRight(s, chars string) string {
	if chars == "" {
		return strings.TrimRightFunc(s, unicode.IsSpace)
	}
	return strings.TrimRight(s, chars)
}

func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// NormalizeWhitespace collapses runs of spaces, tabs and newlines into a
// single space and trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripLow removes ASCII control characters (below 0x20 and DEL).
// With keepNewLines, \n and \r survive.
func StripLow(s string, keepNewLines bool) string {
	return strings.Map(func(r rune) rune {
		if keepNewLines && (r == '\n' || r == '\r') {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
