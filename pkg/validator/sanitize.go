package validator

import (
	"fmt"

	"github.com/dmitrymomot/constraints/pkg/sanitizer"
)

type rewrite struct {
	apply    func(s string, params []any) string
	params   []paramSpec
	required int
}

func (s rewrite) bind(raw []any) ([]any, error) {
	return bindParams(s.params, s.required, raw)
}

// sanitizers maps every sanitizer kind to its rewrite.
var sanitizers = map[Kind]rewrite{
	KindTrim: {
		apply: func(s string, p []any) string {
			return sanitizer.Trim(s, optionsAt[string](p, 0))
		},
		params: []paramSpec{{"chars", stringParam}},
	},
	KindLTrim: {
		apply: func(s string, p []any) string {
			return sanitizer.TrimLeft(s, optionsAt[string](p, 0))
		},
		params: []paramSpec{{"chars", stringParam}},
	},
	KindRTrim: {
		apply: func(s string, p []any) string {
			return sanitizer.TrimRight(s, optionsAt[string](p, 0))
		},
		params: []paramSpec{{"chars", stringParam}},
	},
	KindToLower:             {apply: plain(sanitizer.ToLower)},
	KindToUpper:             {apply: plain(sanitizer.ToUpper)},
	KindNormalizeWhitespace: {apply: plain(sanitizer.NormalizeWhitespace)},
	KindNormalizeEmail:      {apply: plain(sanitizer.NormalizeEmail)},
	KindEscape:              {apply: plain(sanitizer.Escape)},
	KindStripLow: {
		apply: func(s string, p []any) string {
			return sanitizer.StripLow(s, optionsAt[bool](p, 0))
		},
		params: []paramSpec{{"keep_new_lines", boolParam}},
	},
}

func plain(fn func(string) string) func(string, []any) string {
	return func(s string, _ []any) string {
		return fn(s)
	}
}

// SanitizeValue applies a single sanitizer descriptor to s.
func SanitizeValue(d Descriptor, s string) (string, error) {
	san, ok := sanitizers[d.Kind]
	if !ok {
		if _, isConstraint := constraints[d.Kind]; isConstraint {
			return s, fmt.Errorf("%w: %s: constraint kinds do not sanitize", ErrInvalidRule, d)
		}
		return s, fmt.Errorf("%w: %q on %s.%s", ErrUnknownKind, d.Kind, d.Target, d.Property)
	}

	params, err := san.bind(d.Params)
	if err != nil {
		return s, fmt.Errorf("%w: %s: %w", ErrInvalidRule, d, err)
	}
	return san.apply(s, params), nil
}

// Trim removes chars from both ends, or surrounding white space when chars is empty.
func Trim(chars string, opts ...RuleOption) Rule {
	return charsRule(KindTrim, chars, opts)
}

// LTrim is Trim for the start of the string.
func LTrim(chars string, opts ...RuleOption) Rule {
	return charsRule(KindLTrim, chars, opts)
}

// RTrim is Trim for the end of the string.
func RTrim(chars string, opts ...RuleOption) Rule {
	return charsRule(KindRTrim, chars, opts)
}

func charsRule(kind Kind, chars string, opts []RuleOption) Rule {
	if chars == "" {
		return newRule(kind, opts)
	}
	return newRule(kind, opts, chars)
}

func ToLower(opts ...RuleOption) Rule {
	return newRule(KindToLower, opts)
}

func ToUpper(opts ...RuleOption) Rule {
	return newRule(KindToUpper, opts)
}

// NormalizeWhitespace collapses runs of white space into single spaces and trims the ends.
func NormalizeWhitespace(opts ...RuleOption) Rule {
	return newRule(KindNormalizeWhitespace, opts)
}

func NormalizeEmail(opts ...RuleOption) Rule {
	return newRule(KindNormalizeEmail, opts)
}

// Escape replaces HTML special characters with entities.
func Escape(opts ...RuleOption) Rule {
	return newRule(KindEscape, opts)
}

// StripLow removes ASCII control characters, optionally keeping \n and \r.
func StripLow(keepNewLines bool, opts ...RuleOption) Rule {
	if !keepNewLines {
		return newRule(KindStripLow, opts)
	}
	return newRule(KindStripLow, opts, true)
}
