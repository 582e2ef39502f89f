package predicate

import (
	"math"
	"regexp"
	"strconv"
)

var (
	numericRegex = regexp.MustCompile(`^[-+]?[0-9]+$`)
	intRegex     = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)$`)
	floatRegex   = regexp.MustCompile(`^[-+]?(?:[0-9]+)?(?:\.[0-9]*)?(?:[eE][-+]?[0-9]+)?$`)
	decimalRegex = regexp.MustCompile(`^[-+]?(?:[0-9]+|\.[0-9]+|[0-9]+\.[0-9]+)$`)
)

// IntOptions bounds IsInt. Nil bounds are open.
type IntOptions struct {
	Min *int64 `mapstructure:"min" json:"min,omitempty"`
	Max *int64 `mapstructure:"max" json:"max,omitempty"`
}

// FloatOptions bounds IsFloat. Nil bounds are open.
type FloatOptions struct {
	Min *float64 `mapstructure:"min" json:"min,omitempty"`
	Max *float64 `mapstructure:"max" json:"max,omitempty"`
}

// InRange reports whether n falls inside the bounds.
func (o IntOptions) InRange(n int64) bool {
	return (o.Min == nil || n >= *o.Min) && (o.Max == nil || n <= *o.Max)
}

// InRange reports whether f falls inside the bounds.
func (o FloatOptions) InRange(f float64) bool {
	return (o.Min == nil || f >= *o.Min) && (o.Max == nil || f <= *o.Max)
}

// IsNumeric reports whether s is an optionally signed run of digits.
func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// IsDecimal reports whether s is a decimal number such as "0.1", ".3" or "-12".
func IsDecimal(s string) bool {
	return decimalRegex.MatchString(s)
}

// IsInt reports whether s is an integer without leading zeros inside the bounds.
func IsInt(s string, opts IntOptions) bool {
	if !intRegex.MatchString(s) {
		return false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return false
	}
	return opts.InRange(n)
}

// IsFloat reports whether s is a floating point number inside the bounds.
func IsFloat(s string, opts FloatOptions) bool {
	if s == "" || s == "." || s == "+" || s == "-" {
		return false
	}
	if !floatRegex.MatchString(s) {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return opts.InRange(f)
}

// IsDivisibleBy reports whether n is an exact multiple of divisor.
// A zero, NaN or infinite divisor never divides anything.
func IsDivisibleBy(n, divisor float64) bool {
	if divisor == 0 || math.IsNaN(divisor) || math.IsInf(divisor, 0) {
		return false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}
	return math.Mod(n, divisor) == 0
}
