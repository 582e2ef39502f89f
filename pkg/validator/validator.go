package validator

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/constraints/pkg/logger"
)

// Validator evaluates the rules of a registry against property sources.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	registry *Registry
	logger   *slog.Logger
	strict   bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for debug output. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithStrictTargets makes Validate and Sanitize fail with ErrUnknownTarget
// for targets that have no registered rules.
func WithStrictTargets() Option {
	return func(v *Validator) {
		v.strict = true
	}
}

// New creates a validator over reg.
func New(reg *Registry, opts ...Option) *Validator {
	v := &Validator{
		registry: reg,
		logger:   logger.Discard(), // Nope-logger by default
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Registry returns the registry the validator reads from.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// Validate evaluates the target's constraints selected for groups against
// src. It returns nil when every constraint holds, ValidationErrors with the
// violations in registration order otherwise, and a plain error when the
// registry, source or a descriptor is unusable. Missing properties are
// evaluated as nil.
func (v *Validator) Validate(target string, src Source, groups ...string) error {
	if err := v.check(target, src); err != nil {
		return err
	}

	var errs ValidationErrors
	for _, d := range v.registry.RulesFor(target, groups...) {
		if d.Kind.IsSanitizer() {
			continue
		}

		value, _ := src.Lookup(d.Property)
		violation, err := Evaluate(d, value)
		if err != nil {
			v.logger.Error("rule evaluation failed",
				logger.Target(target),
				logger.Property(d.Property),
				logger.Kind(d.Kind.String()),
				logger.Error(err),
			)
			return fmt.Errorf("validate %s: %w", target, err)
		}
		if violation != nil {
			errs.Add(*violation)
		}
	}

	v.logger.Debug("validated",
		logger.Target(target),
		logger.Groups(groups),
		logger.Violations(len(errs)),
	)

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Sanitize applies the target's sanitizers selected for groups to src in
// registration order. Missing properties and values that are not strings are
// left alone.
func (v *Validator) Sanitize(target string, src MutableSource, groups ...string) error {
	if err := v.check(target, src); err != nil {
		return err
	}

	changed := 0
	for _, d := range v.registry.RulesFor(target, groups...) {
		if !d.Kind.IsSanitizer() {
			continue
		}

		value, ok := src.Lookup(d.Property)
		if !ok {
			continue
		}
		s, ok := asString(deref(value))
		if !ok {
			continue
		}

		sanitized, err := SanitizeValue(d, s)
		if err != nil {
			return fmt.Errorf("sanitize %s: %w", target, err)
		}
		if sanitized == s {
			continue
		}
		if err := src.Set(d.Property, sanitized); err != nil {
			return fmt.Errorf("sanitize %s.%s: %w", target, d.Property, err)
		}
		changed++
	}

	v.logger.Debug("sanitized",
		logger.Target(target),
		logger.Groups(groups),
		slog.Int("changed", changed),
	)
	return nil
}

func (v *Validator) check(target string, src Source) error {
	if v == nil || v.registry == nil {
		return ErrNilRegistry
	}
	if src == nil {
		return ErrNilSource
	}
	if v.strict && !v.registry.Has(target) {
		return fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}
	return nil
}
