package validator

import (
	"time"

	"github.com/dmitrymomot/constraints/pkg/predicate"
)

// Unbounded disables the upper bound of IsLength and IsByteLength.
const Unbounded = -1

// Contains checks that the string contains seed.
func Contains(seed string, opts ...RuleOption) Rule {
	return newRule(KindContains, opts, seed)
}

// Equals checks that the value equals comparison. Numbers are compared by
// value regardless of their Go type.
func Equals(comparison any, opts ...RuleOption) Rule {
	return newRule(KindEquals, opts, comparison)
}

// IsAfter checks that the date value is strictly after date.
func IsAfter(date time.Time, opts ...RuleOption) Rule {
	return newRule(KindIsAfter, opts, date)
}

// IsBefore checks that the date value is strictly before date.
func IsBefore(date time.Time, opts ...RuleOption) Rule {
	return newRule(KindIsBefore, opts, date)
}

func IsAlpha(opts ...RuleOption) Rule {
	return newRule(KindIsAlpha, opts)
}

func IsAlphanumeric(opts ...RuleOption) Rule {
	return newRule(KindIsAlphanumeric, opts)
}

func IsASCII(opts ...RuleOption) Rule {
	return newRule(KindIsASCII, opts)
}

func IsBase64(opts ...RuleOption) Rule {
	return newRule(KindIsBase64, opts)
}

// IsBoolean accepts Go booleans and the strings "true", "false", "1" and "0".
func IsBoolean(opts ...RuleOption) Rule {
	return newRule(KindIsBoolean, opts)
}

// IsByteLength checks that the string is between min and max bytes long.
// Pass Unbounded as max to check only the lower bound.
func IsByteLength(min, max int, opts ...RuleOption) Rule {
	return lengthRule(KindIsByteLength, min, max, opts)
}

// IsLength checks that the string is between min and max characters long.
// Pass Unbounded as max to check only the lower bound.
func IsLength(min, max int, opts ...RuleOption) Rule {
	return lengthRule(KindIsLength, min, max, opts)
}

func lengthRule(kind Kind, min, max int, opts []RuleOption) Rule {
	if max == Unbounded {
		return newRule(kind, opts, min)
	}
	return newRule(kind, opts, min, max)
}

// IsCreditCard checks the number with the Luhn algorithm.
func IsCreditCard(opts ...RuleOption) Rule {
	return newRule(KindIsCreditCard, opts)
}

func IsCurrency(o predicate.CurrencyOptions, opts ...RuleOption) Rule {
	return newRule(KindIsCurrency, opts, o)
}

// IsDate accepts time values and strings ParseDate understands.
func IsDate(opts ...RuleOption) Rule {
	return newRule(KindIsDate, opts)
}

func IsDecimal(opts ...RuleOption) Rule {
	return newRule(KindIsDecimal, opts)
}

// IsDivisibleBy checks that the numeric value is a multiple of n.
func IsDivisibleBy(n float64, opts ...RuleOption) Rule {
	return newRule(KindIsDivisibleBy, opts, n)
}

func IsEmail(o predicate.EmailOptions, opts ...RuleOption) Rule {
	return newRule(KindIsEmail, opts, o)
}

func IsFQDN(o predicate.FQDNOptions, opts ...RuleOption) Rule {
	return newRule(KindIsFQDN, opts, o)
}

func IsFloat(o predicate.FloatOptions, opts ...RuleOption) Rule {
	return newRule(KindIsFloat, opts, o)
}

func IsFullWidth(opts ...RuleOption) Rule {
	return newRule(KindIsFullWidth, opts)
}

func IsHalfWidth(opts ...RuleOption) Rule {
	return newRule(KindIsHalfWidth, opts)
}

func IsHexColor(opts ...RuleOption) Rule {
	return newRule(KindIsHexColor, opts)
}

func IsHexadecimal(opts ...RuleOption) Rule {
	return newRule(KindIsHexadecimal, opts)
}

// IsIP checks for an IP address of the given version: 4, 6 or 0 for either.
func IsIP(version int, opts ...RuleOption) Rule {
	return newRule(KindIsIP, opts, version)
}

// IsISBN checks for an ISBN of the given version: 10, 13 or 0 for either.
func IsISBN(version int, opts ...RuleOption) Rule {
	return newRule(KindIsISBN, opts, version)
}

func IsISIN(opts ...RuleOption) Rule {
	return newRule(KindIsISIN, opts)
}

func IsISO8601(opts ...RuleOption) Rule {
	return newRule(KindIsISO8601, opts)
}

// IsIn checks that the value equals one of values.
func IsIn(values []any, opts ...RuleOption) Rule {
	return newRule(KindIsIn, opts, values)
}

func IsInt(o predicate.IntOptions, opts ...RuleOption) Rule {
	return newRule(KindIsInt, opts, o)
}

// IsJSON checks that the string is a JSON object or array.
func IsJSON(opts ...RuleOption) Rule {
	return newRule(KindIsJSON, opts)
}

func IsLowercase(opts ...RuleOption) Rule {
	return newRule(KindIsLowercase, opts)
}

// IsMobilePhone checks for a mobile number of locale, or of any supported
// locale when locale is predicate.AnyLocale.
func IsMobilePhone(locale string, opts ...RuleOption) Rule {
	return newRule(KindIsMobilePhone, opts, locale)
}

func IsMongoID(opts ...RuleOption) Rule {
	return newRule(KindIsMongoID, opts)
}

func IsMultibyte(opts ...RuleOption) Rule {
	return newRule(KindIsMultibyte, opts)
}

// IsNull passes for missing values, nil and the empty string.
func IsNull(opts ...RuleOption) Rule {
	return newRule(KindIsNull, opts)
}

func IsNumeric(opts ...RuleOption) Rule {
	return newRule(KindIsNumeric, opts)
}

func IsSurrogatePair(opts ...RuleOption) Rule {
	return newRule(KindIsSurrogatePair, opts)
}

func IsURL(o predicate.URLOptions, opts ...RuleOption) Rule {
	return newRule(KindIsURL, opts, o)
}

// IsUUID checks for a UUID of the given version: 3, 4, 5 or 0 for any.
func IsUUID(version int, opts ...RuleOption) Rule {
	return newRule(KindIsUUID, opts, version)
}

func IsUppercase(opts ...RuleOption) Rule {
	return newRule(KindIsUppercase, opts)
}

func IsVariableWidth(opts ...RuleOption) Rule {
	return newRule(KindIsVariableWidth, opts)
}

// Matches checks the string against pattern. Modifiers accepts the flags
// i, m and s; g, u and y are accepted and ignored.
func Matches(pattern, modifiers string, opts ...RuleOption) Rule {
	return newRule(KindMatches, opts, pattern, modifiers)
}
