package predicate

import (
	"regexp"
	"strings"
	"sync"
)

var (
	cardDigitsRegex = regexp.MustCompile(`^\d{13,19}$`)

	// currencyPatterns caches one compiled pattern per option set.
	currencyPatterns sync.Map
)

// CurrencyOptions tunes IsCurrency. The zero value accepts US-style amounts
// such as "$1,234.56" with an optional symbol and a leading minus sign.
type CurrencyOptions struct {
	// Symbol defaults to "$".
	Symbol                   string `mapstructure:"symbol" json:"symbol,omitempty"`
	RequireSymbol            bool   `mapstructure:"require_symbol" json:"require_symbol,omitempty"`
	AllowSpaceAfterSymbol    bool   `mapstructure:"allow_space_after_symbol" json:"allow_space_after_symbol,omitempty"`
	SymbolAfterDigits        bool   `mapstructure:"symbol_after_digits" json:"symbol_after_digits,omitempty"`
	DisallowNegatives        bool   `mapstructure:"disallow_negatives" json:"disallow_negatives,omitempty"`
	ParensForNegatives       bool   `mapstructure:"parens_for_negatives" json:"parens_for_negatives,omitempty"`
	NegativeSignBeforeDigits bool   `mapstructure:"negative_sign_before_digits" json:"negative_sign_before_digits,omitempty"`
	NegativeSignAfterDigits  bool   `mapstructure:"negative_sign_after_digits" json:"negative_sign_after_digits,omitempty"`
	AllowSpaceAfterDigits    bool   `mapstructure:"allow_space_after_digits" json:"allow_space_after_digits,omitempty"`
	// ThousandsSeparator defaults to ",".
	ThousandsSeparator string `mapstructure:"thousands_separator" json:"thousands_separator,omitempty"`
	// DecimalSeparator defaults to ".".
	DecimalSeparator string `mapstructure:"decimal_separator" json:"decimal_separator,omitempty"`
}

func (o CurrencyOptions) withDefaults() CurrencyOptions {
	if o.Symbol == "" {
		o.Symbol = "$"
	}
	if o.ThousandsSeparator == "" {
		o.ThousandsSeparator = ","
	}
	if o.DecimalSeparator == "" {
		o.DecimalSeparator = "."
	}
	return o
}

func currencyPattern(o CurrencyOptions) *regexp.Regexp {
	if cached, ok := currencyPatterns.Load(o); ok {
		return cached.(*regexp.Regexp)
	}

	symbol := "(?:" + regexp.QuoteMeta(o.Symbol) + ")"
	if !o.RequireSymbol {
		symbol += "?"
	}
	const negative = "-?"
	whole := "(?:0|[1-9]\\d*|[1-9]\\d{0,2}(?:" + regexp.QuoteMeta(o.ThousandsSeparator) + "\\d{3})*)?"
	fraction := "(?:" + regexp.QuoteMeta(o.DecimalSeparator) + "\\d{2})?"
	pattern := whole + fraction

	negatives := !o.DisallowNegatives
	if negatives && !o.ParensForNegatives {
		switch {
		case o.NegativeSignAfterDigits:
			pattern += negative
		case o.NegativeSignBeforeDigits:
			pattern = negative + pattern
		}
	}

	switch {
	case o.AllowSpaceAfterSymbol:
		pattern = " ?" + pattern
	case o.AllowSpaceAfterDigits:
		pattern += " ?"
	}

	if o.SymbolAfterDigits {
		pattern += symbol
	} else {
		pattern = symbol + pattern
	}

	if negatives {
		switch {
		case o.ParensForNegatives:
			pattern = "(?:\\(" + pattern + "\\)|" + pattern + ")"
		case !o.NegativeSignBeforeDigits && !o.NegativeSignAfterDigits:
			pattern = negative + pattern
		}
	}

	re := regexp.MustCompile("^" + pattern + "$")
	currencyPatterns.Store(o, re)
	return re
}

// IsCurrency reports whether s is a currency amount.
func IsCurrency(s string, opts CurrencyOptions) bool {
	opts = opts.withDefaults()

	// Anchored lookaheads are not available in RE2, so the "has a digit" and
	// "no leading or trailing blank" rules are checked by hand.
	if !strings.ContainsAny(s, "0123456789") {
		return false
	}
	if strings.HasPrefix(s, " ") || strings.HasPrefix(s, "- ") || strings.HasSuffix(s, " ") {
		return false
	}

	return currencyPattern(opts).MatchString(s)
}

// IsCreditCard validates a card number using the Luhn algorithm.
// Spaces and dashes are ignored.
func IsCreditCard(s string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "-", "")

	// Must be between 13-19 digits
	if !cardDigitsRegex.MatchString(cleaned) {
		return false
	}

	return luhn(cleaned)
}

// luhn expects a string of ASCII digits.
func luhn(digits string) bool {
	if digits == "" {
		return false
	}

	sum := 0
	double := false

	// Process digits from right to left
	for i := len(digits) - 1; i >= 0; i-- {
		digit := int(digits[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}
