package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrymomot/constraints/pkg/predicate"
)

// checkFunc receives a dereferenced value and params already normalized by bind.
type checkFunc func(value any, params []any) (bool, error)

type paramSpec struct {
	name string
	conv func(any) (any, error)
}

type constraint struct {
	check checkFunc
	// message is the default template; short replaces it when optional
	// params were left out.
	message  string
	short    string
	params   []paramSpec
	required int
	// validate rejects converted params that no value could satisfy.
	validate func(params []any) error
}

// constraints maps every constraint kind to its predicate.
var constraints = map[Kind]constraint{
	KindContains: {
		check: func(v any, p []any) (bool, error) {
			s, ok := asString(v)
			return ok && strings.Contains(s, p[0].(string)), nil
		},
		message:  "%{field} must contain a %{seed} string",
		params:   []paramSpec{{"seed", stringParam}},
		required: 1,
	},
	KindEquals: {
		check: func(v any, p []any) (bool, error) {
			return v != nil && equal(v, p[0]), nil
		},
		message:  "%{field} must be equal to %{comparison}",
		params:   []paramSpec{{"comparison", anyParam}},
		required: 1,
	},
	KindIsAfter: {
		check: func(v any, p []any) (bool, error) {
			t, ok := asTime(v)
			return ok && t.After(p[0].(time.Time)), nil
		},
		message:  "%{field} must be a date after %{date}",
		params:   []paramSpec{{"date", timeParam}},
		required: 1,
	},
	KindIsBefore: {
		check: func(v any, p []any) (bool, error) {
			t, ok := asTime(v)
			return ok && t.Before(p[0].(time.Time)), nil
		},
		message:  "%{field} must be a date before %{date}",
		params:   []paramSpec{{"date", timeParam}},
		required: 1,
	},
	KindIsAlpha: {
		check:   stringCheck(predicate.IsAlpha),
		message: "%{field} must contain only letters (a-zA-Z)",
	},
	KindIsAlphanumeric: {
		check:   stringCheck(predicate.IsAlphanumeric),
		message: "%{field} must contain only letters and numbers",
	},
	KindIsASCII: {
		check:   stringCheck(predicate.IsASCII),
		message: "%{field} must contain only ASCII characters",
	},
	KindIsBase64: {
		check:   stringCheck(predicate.IsBase64),
		message: "%{field} must be base64 encoded",
	},
	KindIsBoolean: {
		check: func(v any, _ []any) (bool, error) {
			if _, ok := v.(bool); ok {
				return true, nil
			}
			s, ok := asString(v)
			return ok && predicate.IsBoolean(s), nil
		},
		message: "%{field} must be a boolean value",
	},
	KindIsByteLength: {
		check: func(v any, p []any) (bool, error) {
			s, ok := asString(v)
			return ok && inBounds(len(s), p), nil
		},
		message:  "%{field} must be between %{min} and %{max} bytes long",
		short:    "%{field} must be at least %{min} bytes long",
		params:   []paramSpec{{"min", intParam}, {"max", intParam}},
		required: 1,
		validate: validBounds,
	},
	KindIsCreditCard: {
		check:   stringCheck(predicate.IsCreditCard),
		message: "%{field} must be a credit card",
	},
	KindIsCurrency: {
		check: func(v any, p []any) (bool, error) {
			s, ok := asString(v)
			return ok && predicate.IsCurrency(s, optionsAt[predicate.CurrencyOptions](p, 0)), nil
		},
		message: "%{field} must be a currency",
		params:  []paramSpec{{"options", optionsParam[predicate.CurrencyOptions]}},
	},
	KindIsDate: {
		check: func(v any, _ []any) (bool, error) {
			_, ok := asTime(v)
			return ok, nil
		},
		message: "%{field} must be a date",
	},
	KindIsDecimal: {
		check: func(v any, _ []any) (bool, error) {
			if f, ok := asNumber(v); ok {
				return isFinite(f), nil
			}
			s, ok := asString(v)
			return ok && predicate.IsDecimal(s), nil
		},
		message: "%{field} must be a decimal number",
	},
	KindIsDivisibleBy: {
		check: func(v any, p []any) (bool, error) {
			f, ok := asNumeric(v)
			return ok && predicate.IsDivisibleBy(f, p[0].(float64)), nil
		},
		message:  "%{field} must be divisible by %{divisor}",
		params:   []paramSpec{{"divisor", floatParam}},
		required: 1,
		validate: func(p []any) error {
			if p[0].(float64) == 0 {
				return errors.New("divisor must not be zero")
			}
			return nil
		},
	},
	KindIsEmail: {
		check: func(v any, p []any) (bool, error) {
			s, ok := asString(v)
			return ok && predicate.IsEmail(s, optionsAt[predicate.EmailOptions](p, 0)), nil
		},
		message: "%{field} must be an email",
		params:  []paramSpec{{"options", optionsParam[predicate.EmailOptions]}},
	},
	KindIsFQDN: {
		check: func(v any, p []any) (bool, error) {
			s, ok := asString(v)
			return ok && predicate.IsFQDN(s, optionsAt[predicate.FQDNOptions](p, 0)), nil
		},
		message: "%{field} must be a valid domain name",
		params:  []paramSpec{{"options", optionsParam[predicate.FQDNOptions]}},
	},
	KindIsFloat: {
		check: func(v any, p []any) (bool, error) {
			o := optionsAt[predicate.FloatOptions](p, 0)
			if f, ok := asNumber(v); ok {
				return isFinite(f) && o.InRange(f), nil
			}
			s, ok := asString(v)
			return ok && predicate.IsFloat(s, o), nil
		},
		message: "%{field} must be a float number",
		params:  []paramSpec{{"options", optionsParam[predicate.FloatOptions]}},
	},
	KindIsFullWidth: {
		check:   stringCheck(predicate.IsFullWidth),
		message: "%{field} must contain full-width characters",
	},
	KindIsHalfWidth: {
		check:   stringCheck(predicate.IsHalfWidth),
		message: "%{field} must contain half-width characters",
	},
	KindIsHexColor: {
		check:   stringCheck(predicate.IsHexColor),
		message: "%{field} must be a hexadecimal color",
	},
	KindIsHexadecimal: {
		check:   stringCheck(predicate.IsHexadecimal),
		message: "%{field} must be a hexadecimal number",
	},
	KindIsIP: {
		check: func(v any, p []any) (bool, error) {
			s, ok := asString(v)
			return ok && predicate.IsIP(s, optionsAt[int](p, 0)), nil
		},
		message: "%{field} must be an ip address",
		params:  []paramSpec{{"version", intParam}},
		validate: validVersion("ip", 0, 4, 6),
	},
	KindIsISBN: {
		check: func(v any, p []any) (bool, error) {
			s, ok := asString(v)
			return ok && predicate.IsISBN(s, optionsAt[int](p, 0)), nil
		},
		message: "%{field} must be an ISBN",
		params:  []paramSpec{{"version", intParam}},
		validate: validVersion("isbn", 0, 10, 13),
	},
	KindIsISIN: {
		check:   stringCheck(predicate.IsISIN),
		message: "%{field} must be an ISIN (stock/security identifier)",
	},
	KindIsISO8601: {
		check:   stringCheck(predicate.IsISO8601),
		message: "%{field} must be a valid ISO 8601 date string",
	},
	KindIsIn: {
		check: func(v any, p []any) (bool, error) {
			if v == nil {
				return false, nil
			}
			for _, allowed := range p[0].([]any) {
				if equal(v, allowed) {
					return true, nil
				}
			}
			return false, nil
		},
		message:  "%{field} must be one of the following values: %{values}",
		params:   []paramSpec{{"values", listParam}},
		required: 1,
		validate: func(p []any) error {
			if len(p[0].([]any)) == 0 {
				return errors.New("allowed values list is empty")
			}
			return nil
		},
	},
	KindIsInt: {
		check: func(v any, p []any) (bool, error) {
			o := optionsAt[predicate.IntOptions](p, 0)
			if n, ok := asInteger(v); ok {
				return o.InRange(n), nil
			}
			if f, ok := asNumber(v); ok {
				n, ok := floatToInt64(f)
				return ok && o.InRange(n), nil
			}
			s, ok := asString(v)
			return ok && predicate.IsInt(s, o), nil
		},
		message: "%{field} must be an integer number",
		params:  []paramSpec{{"options", optionsParam[predicate.IntOptions]}},
	},
	KindIsJSON: {
		check:   stringCheck(isJSON),
		message: "%{field} must be a json string",
	},
	KindIsLength: {
		check: func(v any, p []any) (bool, error) {
			s, ok := asString(v)
			return ok && inBounds(utf8.RuneCountInString(s), p), nil
		},
		message:  "%{field} must be between %{min} and %{max} characters long",
		short:    "%{field} must be at least %{min} characters long",
		params:   []paramSpec{{"min", intParam}, {"max", intParam}},
		required: 1,
		validate: validBounds,
	},
	KindIsLowercase: {
		check:   stringCheck(predicate.IsLowercase),
		message: "%{field} must be a lowercase string",
	},
	KindIsMobilePhone: {
		check: func(v any, p []any) (bool, error) {
			s, ok := asString(v)
			return ok && predicate.IsMobilePhone(s, optionsAt[string](p, 0)), nil
		},
		message: "%{field} must be a phone number",
		params:  []paramSpec{{"locale", stringParam}},
		validate: func(p []any) error {
			if locale := optionsAt[string](p, 0); !predicate.IsSupportedLocale(locale) {
				return fmt.Errorf("unsupported locale %q", locale)
			}
			return nil
		},
	},
	KindIsMongoID: {
		check:   stringCheck(predicate.IsMongoID),
		message: "%{field} must be a mongodb id",
	},
	KindIsMultibyte: {
		check:   stringCheck(predicate.IsMultibyte),
		message: "%{field} must contain one or more multibyte chars",
	},
	KindIsNull: {
		check: func(v any, _ []any) (bool, error) {
			if isNil(v) {
				return true, nil
			}
			s, ok := asString(v)
			return ok && s == "", nil
		},
		message: "%{field} must be null",
	},
	KindIsNumeric: {
		check: func(v any, _ []any) (bool, error) {
			if f, ok := asNumber(v); ok {
				return isIntegral(f), nil
			}
			s, ok := asString(v)
			return ok && predicate.IsNumeric(s), nil
		},
		message: "%{field} must be a number",
	},
	KindIsSurrogatePair: {
		check:   stringCheck(predicate.IsSurrogatePair),
		message: "%{field} must contain any surrogate pairs chars",
	},
	KindIsURL: {
		check: func(v any, p []any) (bool, error) {
			s, ok := asString(v)
			return ok && predicate.IsURL(s, optionsAt[predicate.URLOptions](p, 0)), nil
		},
		message: "%{field} must be an URL address",
		params:  []paramSpec{{"options", optionsParam[predicate.URLOptions]}},
	},
	KindIsUUID: {
		check: func(v any, p []any) (bool, error) {
			s, ok := asString(v)
			return ok && predicate.IsUUID(s, optionsAt[int](p, 0)), nil
		},
		message: "%{field} must be an UUID",
		params:  []paramSpec{{"version", intParam}},
		validate: validVersion("uuid", 0, 3, 4, 5),
	},
	KindIsUppercase: {
		check:   stringCheck(predicate.IsUppercase),
		message: "%{field} must be uppercase",
	},
	KindIsVariableWidth: {
		check:   stringCheck(predicate.IsVariableWidth),
		message: "%{field} must contain a full-width and half-width characters",
	},
	KindMatches: {
		check: func(v any, p []any) (bool, error) {
			re, err := compilePattern(p[0].(string), optionsAt[string](p, 1))
			if err != nil {
				return false, err
			}
			s, ok := asString(v)
			return ok && re.MatchString(s), nil
		},
		message:  "%{field} must match %{pattern} regular expression",
		params:   []paramSpec{{"pattern", stringParam}, {"modifiers", stringParam}},
		required: 1,
		validate: func(p []any) error {
			_, err := compilePattern(p[0].(string), optionsAt[string](p, 1))
			return err
		},
	},
}

// Evaluate checks value against a single constraint descriptor. It returns a
// violation when the predicate fails and an error only when the descriptor
// itself is unusable.
func Evaluate(d Descriptor, value any) (*ValidationError, error) {
	c, ok := constraints[d.Kind]
	if !ok {
		if d.Kind.IsSanitizer() {
			return nil, fmt.Errorf("%w: %s: sanitizer kinds are not evaluated", ErrInvalidRule, d)
		}
		return nil, fmt.Errorf("%w: %q on %s.%s", ErrUnknownKind, d.Kind, d.Target, d.Property)
	}

	params, err := c.bind(d.Params)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRule, d, err)
	}

	passed, err := c.check(deref(value), params)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRule, d, err)
	}
	if passed {
		return nil, nil
	}

	return c.violation(d, params, value), nil
}

// bind checks arity and converts raw params into the types check expects.
func (c constraint) bind(raw []any) ([]any, error) {
	params, err := bindParams(c.params, c.required, raw)
	if err != nil || c.validate == nil {
		return params, err
	}
	if err := c.validate(params); err != nil {
		return nil, err
	}
	return params, nil
}

// validBounds accepts [min] or [min, max] with 0 <= min <= max, or max
// set to Unbounded.
func validBounds(p []any) error {
	lo := p[0].(int)
	if lo < 0 {
		return fmt.Errorf("min %d must not be negative", lo)
	}
	if len(p) > 1 && p[1].(int) != Unbounded && p[1].(int) < lo {
		return fmt.Errorf("bounds %d..%d are out of order", lo, p[1].(int))
	}
	return nil
}

func validVersion(name string, versions ...int) func([]any) error {
	return func(p []any) error {
		if v := optionsAt[int](p, 0); !slices.Contains(versions, v) {
			return fmt.Errorf("unsupported %s version %d", name, v)
		}
		return nil
	}
}

func (c constraint) violation(d Descriptor, params []any, value any) *ValidationError {
	values := map[string]any{"field": d.Property}
	for i, p := range params {
		values[c.params[i].name] = p
	}

	tmpl := c.message
	if c.short != "" && len(params) < len(c.params) {
		tmpl = c.short
	}
	if d.Message != "" {
		tmpl = d.Message
	}

	return &ValidationError{
		Field:             d.Property,
		Kind:              d.Kind,
		Message:           formatMessage(tmpl, values),
		TranslationKey:    "validation." + string(d.Kind),
		TranslationValues: values,
		Value:             value,
	}
}

func stringCheck(fn func(string) bool) checkFunc {
	return func(v any, _ []any) (bool, error) {
		s, ok := asString(v)
		return ok && fn(s), nil
	}
}

// inBounds expects params [min] or [min, max].
func inBounds(n int, p []any) bool {
	if n < p[0].(int) {
		return false
	}
	if len(p) < 2 || p[1].(int) == Unbounded {
		return true
	}
	return n <= p[1].(int)
}

// isJSON accepts JSON objects and arrays only; bare scalars are not documents.
func isJSON(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
		return false
	}
	return json.Valid([]byte(trimmed))
}
