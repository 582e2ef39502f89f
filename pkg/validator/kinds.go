package validator

import "slices"

// Kind identifies what a descriptor checks or, for sanitizer kinds, how it
// rewrites a value.
type Kind string

// Constraint kinds.
const (
	KindContains        Kind = "contains"
	KindEquals          Kind = "equals"
	KindIsAfter         Kind = "is_after"
	KindIsAlpha         Kind = "is_alpha"
	KindIsAlphanumeric  Kind = "is_alphanumeric"
	KindIsASCII         Kind = "is_ascii"
	KindIsBase64        Kind = "is_base64"
	KindIsBefore        Kind = "is_before"
	KindIsBoolean       Kind = "is_boolean"
	KindIsByteLength    Kind = "is_byte_length"
	KindIsCreditCard    Kind = "is_credit_card"
	KindIsCurrency      Kind = "is_currency"
	KindIsDate          Kind = "is_date"
	KindIsDecimal       Kind = "is_decimal"
	KindIsDivisibleBy   Kind = "is_divisible_by"
	KindIsEmail         Kind = "is_email"
	KindIsFQDN          Kind = "is_fqdn"
	KindIsFloat         Kind = "is_float"
	KindIsFullWidth     Kind = "is_full_width"
	KindIsHalfWidth     Kind = "is_half_width"
	KindIsHexColor      Kind = "is_hex_color"
	KindIsHexadecimal   Kind = "is_hexadecimal"
	KindIsIP            Kind = "is_ip"
	KindIsISBN          Kind = "is_isbn"
	KindIsISIN          Kind = "is_isin"
	KindIsISO8601       Kind = "is_iso8601"
	KindIsIn            Kind = "is_in"
	KindIsInt           Kind = "is_int"
	KindIsJSON          Kind = "is_json"
	KindIsLength        Kind = "is_length"
	KindIsLowercase     Kind = "is_lowercase"
	KindIsMobilePhone   Kind = "is_mobile_phone"
	KindIsMongoID       Kind = "is_mongo_id"
	KindIsMultibyte     Kind = "is_multibyte"
	KindIsNull          Kind = "is_null"
	KindIsNumeric       Kind = "is_numeric"
	KindIsSurrogatePair Kind = "is_surrogate_pair"
	KindIsURL           Kind = "is_url"
	KindIsUUID          Kind = "is_uuid"
	KindIsUppercase     Kind = "is_uppercase"
	KindIsVariableWidth Kind = "is_variable_width"
	KindMatches         Kind = "matches"
)

// Sanitizer kinds.
const (
	KindTrim                Kind = "trim"
	KindLTrim               Kind = "ltrim"
	KindRTrim               Kind = "rtrim"
	KindToLower             Kind = "to_lower"
	KindToUpper             Kind = "to_upper"
	KindNormalizeWhitespace Kind = "normalize_whitespace"
	KindNormalizeEmail      Kind = "normalize_email"
	KindEscape              Kind = "escape"
	KindStripLow            Kind = "strip_low"
)

func (k Kind) String() string {
	return string(k)
}

// IsSanitizer reports whether k rewrites values instead of checking them.
func (k Kind) IsSanitizer() bool {
	_, ok := sanitizers[k]
	return ok
}

// Known reports whether k is a constraint or sanitizer kind.
func (k Kind) Known() bool {
	if _, ok := constraints[k]; ok {
		return true
	}
	return k.IsSanitizer()
}

// Kinds returns every known kind sorted by name.
func Kinds() []Kind {
	all := make([]Kind, 0, len(constraints)+len(sanitizers))
	for k := range constraints {
		all = append(all, k)
	}
	for k := range sanitizers {
		all = append(all, k)
	}
	slices.Sort(all)
	return all
}
