package validator

import (
	"errors"
	"fmt"
	"slices"
)

// Builder collects descriptors during the construction phase. The zero value
// is ready to use. It is not safe for concurrent use; build the registry once
// and share that instead.
type Builder struct {
	targets []string
	rules   map[string][]Descriptor
	errs    []error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{rules: make(map[string][]Descriptor)}
}

// Register appends d to its target. Nothing is deduplicated or overwritten;
// problems with the descriptor are reported by Build.
func (b *Builder) Register(d Descriptor) *Builder {
	if b.rules == nil {
		b.rules = make(map[string][]Descriptor)
	}
	if _, seen := b.rules[d.Target]; !seen {
		b.targets = append(b.targets, d.Target)
	}
	b.rules[d.Target] = append(b.rules[d.Target], d.clone())
	return b
}

// Target starts (or continues) registering rules for the named target.
func (b *Builder) Target(name string) *TargetBuilder {
	return &TargetBuilder{builder: b, name: name}
}

// Build validates every registered descriptor and returns the immutable
// registry. All problems are reported together. The builder can keep being
// used afterwards; later registrations do not leak into built registries.
func (b *Builder) Build() (*Registry, error) {
	errs := slices.Clone(b.errs)
	reg := &Registry{
		targets: make([]string, 0, len(b.targets)),
		rules:   make(map[string][]Descriptor, len(b.rules)),
	}

	for _, target := range b.targets {
		for _, d := range b.rules[target] {
			normalized, err := normalize(d)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if _, seen := reg.rules[target]; !seen {
				reg.targets = append(reg.targets, target)
			}
			reg.rules[target] = append(reg.rules[target], normalized)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return reg, nil
}

// MustBuild is like Build but panics on error. Intended for schemas defined
// in code at program start.
func (b *Builder) MustBuild() *Registry {
	reg, err := b.Build()
	if err != nil {
		panic(fmt.Errorf("build registry: %w", err))
	}
	return reg
}

// normalize checks the descriptor's shape and converts its params into the
// types its kind works with.
func normalize(d Descriptor) (Descriptor, error) {
	d = d.clone()
	if d.Target == "" || d.Property == "" {
		return d, fmt.Errorf("%w: %s: target and property are required", ErrInvalidDescriptor, d)
	}

	var (
		params []any
		err    error
	)
	if c, ok := constraints[d.Kind]; ok {
		params, err = c.bind(d.Params)
	} else if s, ok := sanitizers[d.Kind]; ok {
		params, err = s.bind(d.Params)
	} else {
		return d, fmt.Errorf("%w: %q on %s.%s", ErrUnknownKind, d.Kind, d.Target, d.Property)
	}
	if err != nil {
		return d, fmt.Errorf("%w: %s: %w", ErrInvalidRule, d, err)
	}

	d.Params = params
	return d, nil
}

// TargetBuilder registers rules for one target.
type TargetBuilder struct {
	builder *Builder
	name    string
}

// Property binds rules to the named property in the given order.
func (t *TargetBuilder) Property(name string, rules ...Rule) *TargetBuilder {
	for _, rule := range rules {
		d, err := rule.Bind(t.name, name)
		if err != nil {
			t.builder.errs = append(t.builder.errs, err)
			continue
		}
		t.builder.Register(d)
	}
	return t
}

// Target switches to another target on the same builder.
func (t *TargetBuilder) Target(name string) *TargetBuilder {
	return t.builder.Target(name)
}

// Build builds the underlying builder.
func (t *TargetBuilder) Build() (*Registry, error) {
	return t.builder.Build()
}

// MustBuild builds the underlying builder and panics on error.
func (t *TargetBuilder) MustBuild() *Registry {
	return t.builder.MustBuild()
}
