package validator

import (
	"fmt"
	"slices"
)

// Descriptor is a single registered rule bound to a target property.
// Treat it as immutable once it has been registered.
type Descriptor struct {
	Kind     Kind
	Target   string
	Property string
	// Params holds zero to two positional, kind specific values.
	Params  []any
	Groups  []string
	Message string
	// Always selects the descriptor for every validation pass,
	// whatever groups were requested.
	Always bool
}

// Selected reports whether the descriptor takes part in a pass for the
// requested groups. Without groups only ungrouped descriptors run; with groups
// the descriptor's groups must intersect the request. Always wins either way.
func (d Descriptor) Selected(groups ...string) bool {
	if d.Always {
		return true
	}
	if len(groups) == 0 {
		return len(d.Groups) == 0
	}
	for _, g := range d.Groups {
		if slices.Contains(groups, g) {
			return true
		}
	}
	return false
}

// Param returns the i-th parameter or nil when it is absent.
func (d Descriptor) Param(i int) any {
	if i < 0 || i >= len(d.Params) {
		return nil
	}
	return d.Params[i]
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s.%s:%s", d.Target, d.Property, d.Kind)
}

func (d Descriptor) clone() Descriptor {
	d.Params = slices.Clone(d.Params)
	d.Groups = slices.Clone(d.Groups)
	return d
}

// RuleOption customizes a rule before it is bound to a property.
type RuleOption func(*Descriptor)

// Message overrides the default violation message. The message may use the
// same %{name} placeholders as the default templates.
func Message(msg string) RuleOption {
	return func(d *Descriptor) {
		d.Message = msg
	}
}

// Groups restricts the rule to validation passes that request one of groups.
func Groups(groups ...string) RuleOption {
	return func(d *Descriptor) {
		d.Groups = append(d.Groups, groups...)
	}
}

// Always makes the rule run regardless of the requested groups.
func Always() RuleOption {
	return func(d *Descriptor) {
		d.Always = true
	}
}

// Rule is an unbound descriptor produced by one of the registration
// functions. It becomes a Descriptor once the builder attaches it to a
// (target, property) pair.
type Rule struct {
	kind   Kind
	params []any
	opts   []RuleOption
	err    error
}

// newRule records the same param problems Build would report for the kind.
func newRule(kind Kind, opts []RuleOption, params ...any) Rule {
	r := Rule{kind: kind, params: params, opts: opts}
	if c, ok := constraints[kind]; ok {
		_, r.err = c.bind(params)
	} else if s, ok := sanitizers[kind]; ok {
		_, r.err = s.bind(params)
	}
	return r
}

// Kind returns the rule kind.
func (r Rule) Kind() Kind {
	return r.kind
}

// Err returns the problem recorded while the rule was constructed, if any.
func (r Rule) Err() error {
	return r.err
}

// Bind attaches the rule to a target property.
func (r Rule) Bind(target, property string) (Descriptor, error) {
	d := Descriptor{
		Kind:     r.kind,
		Target:   target,
		Property: property,
		Params:   slices.Clone(r.params),
	}
	for _, opt := range r.opts {
		opt(&d)
	}
	if r.err != nil {
		return d, fmt.Errorf("%w: %s: %w", ErrInvalidRule, d, r.err)
	}
	return d, nil
}
