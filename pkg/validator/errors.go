package validator

import "errors"

// Configuration errors. Violations are never reported through these; they are
// returned as ValidationErrors.
var (
	// ErrUnknownKind is returned when a descriptor names a kind with no predicate or sanitizer.
	ErrUnknownKind = errors.New("unknown rule kind")

	// ErrInvalidRule is returned when a rule carries params its kind cannot use.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrInvalidDescriptor is returned when a descriptor has no target or property.
	ErrInvalidDescriptor = errors.New("invalid descriptor")

	// ErrNilRegistry is returned when a validator is used without a registry.
	ErrNilRegistry = errors.New("registry is nil")

	// ErrNilSource is returned when there is nothing to read values from.
	ErrNilSource = errors.New("source is nil")

	// ErrPropertyNotFound is returned when a sanitized value cannot be written back.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrNotSettable is returned for read-only properties.
	ErrNotSettable = errors.New("property is not settable")

	// ErrUnknownTarget is returned by a strict validator for a target without rules.
	ErrUnknownTarget = errors.New("unknown target")
)
