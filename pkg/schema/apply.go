package schema

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/dmitrymomot/constraints/pkg/predicate"
	"github.com/dmitrymomot/constraints/pkg/validator"
)

// Apply registers every rule of the document on b in document order.
// Rules that cannot be built are skipped and reported together, each with
// its Target.property[index] path.
func (d *Document) Apply(b *validator.Builder) error {
	if d == nil || len(d.Targets) == 0 {
		return ErrEmptyDocument
	}

	var errs []error
	for ti, t := range d.Targets {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%w: target #%d has no name", ErrInvalidSchema, ti))
			continue
		}
		for pi, p := range t.Properties {
			if p.Name == "" {
				errs = append(errs, fmt.Errorf("%w: %s: property #%d has no name", ErrInvalidSchema, t.Name, pi))
				continue
			}
			for ri, rs := range p.Rules {
				rule, err := rs.Rule()
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", rulePath(t.Name, p.Name, ri), err))
					continue
				}
				desc, err := rule.Bind(t.Name, p.Name)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", rulePath(t.Name, p.Name, ri), err))
					continue
				}
				b.Register(desc)
			}
		}
	}
	return errors.Join(errs...)
}

// Build applies the document to a fresh builder and builds the registry.
func (d *Document) Build() (*validator.Registry, error) {
	b := validator.NewBuilder()
	if err := d.Apply(b); err != nil {
		return nil, err
	}
	return b.Build()
}

// Rule converts s into a rule through the registration function of
// its kind.
func (s RuleSpec) Rule() (validator.Rule, error) {
	kind := validator.Kind(s.Kind)
	f, ok := factories[kind]
	if !ok {
		return validator.Rule{}, fmt.Errorf("%w: %q", validator.ErrUnknownKind, s.Kind)
	}

	var opts []validator.RuleOption
	if s.Message != "" {
		opts = append(opts, validator.Message(s.Message))
	}
	if len(s.Groups) > 0 {
		opts = append(opts, validator.Groups(s.Groups...))
	}
	if s.Always {
		opts = append(opts, validator.Always())
	}

	rule, err := f(args{kind: kind, params: s.Params, options: s.Options}, opts)
	if err != nil {
		return validator.Rule{}, fmt.Errorf("%w: %s: %w", validator.ErrInvalidRule, s.Kind, err)
	}
	return rule, nil
}

// args gives a factory typed access to the raw params of a RuleSpec.
type args struct {
	kind    validator.Kind
	params  []any
	options map[string]any
}

func (a args) check(max int) error {
	if len(a.params) > max {
		return fmt.Errorf("takes at most %d params, got %d", max, len(a.params))
	}
	if a.options != nil {
		return errors.New("does not take options")
	}
	return nil
}

type factory func(a args, opts []validator.RuleOption) (validator.Rule, error)

// param decodes the i-th param into T. Numbers and strings are converted
// weakly, so 3, 3.0 and "3" all decode into an int.
func param[T any](a args, i int, name string) (T, error) {
	var out T
	if i >= len(a.params) {
		return out, fmt.Errorf("missing param %s", name)
	}
	if err := mapstructure.WeakDecode(a.params[i], &out); err != nil {
		return out, fmt.Errorf("param %s: %w", name, err)
	}
	return out, nil
}

func optional[T any](a args, i int, name string, def T) (T, error) {
	if i >= len(a.params) || a.params[i] == nil {
		return def, nil
	}
	return param[T](a, i, name)
}

func dateParam(a args, i int) (time.Time, error) {
	if i >= len(a.params) {
		return time.Time{}, errors.New("missing param date")
	}
	switch v := a.params[i].(type) {
	case time.Time:
		return v, nil
	case string:
		if t, ok := predicate.ParseDate(v); ok {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("param date: cannot parse %v", a.params[i])
}

// optionsOf reads the options struct from the options map or, failing
// that, from the first param.
func optionsOf[T any](a args) (T, error) {
	if a.options != nil && len(a.params) > 0 {
		var zero T
		return zero, errors.New("options given both as params and options")
	}
	if len(a.params) > 1 {
		var zero T
		return zero, fmt.Errorf("takes at most 1 param, got %d", len(a.params))
	}
	var raw any
	if a.options != nil {
		raw = a.options
	} else if len(a.params) == 1 {
		raw = a.params[0]
	}
	return validator.DecodeOptions[T](raw)
}

func simple(fn func(...validator.RuleOption) validator.Rule) factory {
	return func(a args, opts []validator.RuleOption) (validator.Rule, error) {
		if err := a.check(0); err != nil {
			return validator.Rule{}, err
		}
		return fn(opts...), nil
	}
}

func withOptions[T any](fn func(T, ...validator.RuleOption) validator.Rule) factory {
	return func(a args, opts []validator.RuleOption) (validator.Rule, error) {
		o, err := optionsOf[T](a)
		if err != nil {
			return validator.Rule{}, err
		}
		return fn(o, opts...), nil
	}
}

func withString(name, def string, required bool, fn func(string, ...validator.RuleOption) validator.Rule) factory {
	return func(a args, opts []validator.RuleOption) (validator.Rule, error) {
		if err := a.check(1); err != nil {
			return validator.Rule{}, err
		}
		var (
			s   string
			err error
		)
		if required {
			s, err = param[string](a, 0, name)
		} else {
			s, err = optional(a, 0, name, def)
		}
		if err != nil {
			return validator.Rule{}, err
		}
		return fn(s, opts...), nil
	}
}

func withVersion(fn func(int, ...validator.RuleOption) validator.Rule) factory {
	return func(a args, opts []validator.RuleOption) (validator.Rule, error) {
		if err := a.check(1); err != nil {
			return validator.Rule{}, err
		}
		v, err := optional(a, 0, "version", 0)
		if err != nil {
			return validator.Rule{}, err
		}
		return fn(v, opts...), nil
	}
}

func withDate(fn func(time.Time, ...validator.RuleOption) validator.Rule) factory {
	return func(a args, opts []validator.RuleOption) (validator.Rule, error) {
		if err := a.check(1); err != nil {
			return validator.Rule{}, err
		}
		t, err := dateParam(a, 0)
		if err != nil {
			return validator.Rule{}, err
		}
		return fn(t, opts...), nil
	}
}

func withBounds(fn func(int, int, ...validator.RuleOption) validator.Rule) factory {
	return func(a args, opts []validator.RuleOption) (validator.Rule, error) {
		if err := a.check(2); err != nil {
			return validator.Rule{}, err
		}
		lo, err := param[int](a, 0, "min")
		if err != nil {
			return validator.Rule{}, err
		}
		hi, err := optional(a, 1, "max", validator.Unbounded)
		if err != nil {
			return validator.Rule{}, err
		}
		return fn(lo, hi, opts...), nil
	}
}

var factories = map[validator.Kind]factory{
	validator.KindContains: withString("seed", "", true, validator.Contains),
	validator.KindEquals: func(a args, opts []validator.RuleOption) (validator.Rule, error) {
		if err := a.check(1); err != nil {
			return validator.Rule{}, err
		}
		if len(a.params) == 0 {
			return validator.Rule{}, errors.New("missing param comparison")
		}
		return validator.Equals(a.params[0], opts...), nil
	},
	validator.KindIsAfter:        withDate(validator.IsAfter),
	validator.KindIsBefore:       withDate(validator.IsBefore),
	validator.KindIsAlpha:        simple(validator.IsAlpha),
	validator.KindIsAlphanumeric: simple(validator.IsAlphanumeric),
	validator.KindIsASCII:        simple(validator.IsASCII),
	validator.KindIsBase64:       simple(validator.IsBase64),
	validator.KindIsBoolean:      simple(validator.IsBoolean),
	validator.KindIsByteLength:   withBounds(validator.IsByteLength),
	validator.KindIsLength:       withBounds(validator.IsLength),
	validator.KindIsCreditCard:   simple(validator.IsCreditCard),
	validator.KindIsCurrency:     withOptions(validator.IsCurrency),
	validator.KindIsDate:         simple(validator.IsDate),
	validator.KindIsDecimal:      simple(validator.IsDecimal),
	validator.KindIsDivisibleBy: func(a args, opts []validator.RuleOption) (validator.Rule, error) {
		if err := a.check(1); err != nil {
			return validator.Rule{}, err
		}
		n, err := param[float64](a, 0, "divisor")
		if err != nil {
			return validator.Rule{}, err
		}
		return validator.IsDivisibleBy(n, opts...), nil
	},
	validator.KindIsEmail:         withOptions(validator.IsEmail),
	validator.KindIsFQDN:          withOptions(validator.IsFQDN),
	validator.KindIsFloat:         withOptions(validator.IsFloat),
	validator.KindIsFullWidth:     simple(validator.IsFullWidth),
	validator.KindIsHalfWidth:     simple(validator.IsHalfWidth),
	validator.KindIsHexColor:      simple(validator.IsHexColor),
	validator.KindIsHexadecimal:   simple(validator.IsHexadecimal),
	validator.KindIsIP:            withVersion(validator.IsIP),
	validator.KindIsISBN:          withVersion(validator.IsISBN),
	validator.KindIsISIN:          simple(validator.IsISIN),
	validator.KindIsISO8601:       simple(validator.IsISO8601),
	validator.KindIsInt:           withOptions(validator.IsInt),
	validator.KindIsJSON:          simple(validator.IsJSON),
	validator.KindIsLowercase:     simple(validator.IsLowercase),
	validator.KindIsMobilePhone:   withString("locale", predicate.AnyLocale, false, validator.IsMobilePhone),
	validator.KindIsMongoID:       simple(validator.IsMongoID),
	validator.KindIsMultibyte:     simple(validator.IsMultibyte),
	validator.KindIsNull:          simple(validator.IsNull),
	validator.KindIsNumeric:       simple(validator.IsNumeric),
	validator.KindIsSurrogatePair: simple(validator.IsSurrogatePair),
	validator.KindIsURL:           withOptions(validator.IsURL),
	validator.KindIsUUID:          withVersion(validator.IsUUID),
	validator.KindIsUppercase:     simple(validator.IsUppercase),
	validator.KindIsVariableWidth: simple(validator.IsVariableWidth),
	validator.KindIsIn: func(a args, opts []validator.RuleOption) (validator.Rule, error) {
		if a.options != nil {
			return validator.Rule{}, errors.New("does not take options")
		}
		// A single list param and a flat list of values are both accepted.
		if len(a.params) == 1 {
			if list, ok := a.params[0].([]any); ok {
				return validator.IsIn(list, opts...), nil
			}
		}
		return validator.IsIn(a.params, opts...), nil
	},
	validator.KindMatches: func(a args, opts []validator.RuleOption) (validator.Rule, error) {
		if err := a.check(2); err != nil {
			return validator.Rule{}, err
		}
		pattern, err := param[string](a, 0, "pattern")
		if err != nil {
			return validator.Rule{}, err
		}
		modifiers, err := optional(a, 1, "modifiers", "")
		if err != nil {
			return validator.Rule{}, err
		}
		return validator.Matches(pattern, modifiers, opts...), nil
	},

	validator.KindTrim:                withString("chars", "", false, validator.Trim),
	validator.KindLTrim:               withString("chars", "", false, validator.LTrim),
	validator.KindRTrim:               withString("chars", "", false, validator.RTrim),
	validator.KindToLower:             simple(validator.ToLower),
	validator.KindToUpper:             simple(validator.ToUpper),
	validator.KindNormalizeWhitespace: simple(validator.NormalizeWhitespace),
	validator.KindNormalizeEmail:      simple(validator.NormalizeEmail),
	validator.KindEscape:              simple(validator.Escape),
	validator.KindStripLow: func(a args, opts []validator.RuleOption) (validator.Rule, error) {
		if err := a.check(1); err != nil {
			return validator.Rule{}, err
		}
		keep, err := optional(a, 0, "keep_new_lines", false)
		if err != nil {
			return validator.Rule{}, err
		}
		return validator.StripLow(keep, opts...), nil
	},
}
