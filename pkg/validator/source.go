package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// Source gives the validator read access to property values.
type Source interface {
	// Lookup returns the property value and whether the property exists.
	Lookup(property string) (any, bool)
}

// MutableSource is a Source sanitizers can write back to.
type MutableSource interface {
	Source
	Set(property string, value any) error
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(property string) (any, bool)

func (f SourceFunc) Lookup(property string) (any, bool) {
	return f(property)
}

// Map is a decoded document. Property names containing dots walk nested maps
// and slices ("address.city", "items.0.sku") unless the map holds the dotted
// name as a key itself.
type Map map[string]any

func (m Map) Lookup(property string) (any, bool) {
	if v, ok := m[property]; ok {
		return v, true
	}
	if !strings.Contains(property, ".") {
		return nil, false
	}

	var current any = map[string]any(m)
	for _, part := range strings.Split(property, ".") {
		next, ok := child(current, part)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Set replaces the value of an existing or top-level property. Nested
// properties require their parent to exist.
func (m Map) Set(property string, value any) error {
	if _, ok := m[property]; ok || !strings.Contains(property, ".") {
		m[property] = value
		return nil
	}

	idx := strings.LastIndex(property, ".")
	parent, ok := m.Lookup(property[:idx])
	if !ok {
		return fmt.Errorf("%w: %s", ErrPropertyNotFound, property)
	}

	key := property[idx+1:]
	switch p := parent.(type) {
	case map[string]any:
		p[key] = value
	case Map:
		p[key] = value
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(p) {
			return fmt.Errorf("%w: %s", ErrPropertyNotFound, property)
		}
		p[i] = value
	default:
		return fmt.Errorf("%w: %s: parent is %T", ErrNotSettable, property, parent)
	}
	return nil
}

func child(v any, key string) (any, bool) {
	switch c := v.(type) {
	case map[string]any:
		next, ok := c[key]
		return next, ok
	case Map:
		next, ok := c[key]
		return next, ok
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(c) {
			return nil, false
		}
		return c[i], true
	default:
		return nil, false
	}
}

// Accessor reads, and optionally writes, one field of T.
type Accessor[T any] struct {
	Get func(*T) any
	Set func(*T, any) error
}

// Getter is a read-only accessor.
func Getter[T any](get func(*T) any) Accessor[T] {
	return Accessor[T]{Get: get}
}

// StringField is a read-write accessor for a string field, addressed by a
// function returning a pointer to it.
func StringField[T any](field func(*T) *string) Accessor[T] {
	return Accessor[T]{
		Get: func(v *T) any {
			return *field(v)
		},
		Set: func(v *T, value any) error {
			s, ok := asString(value)
			if !ok {
				return fmt.Errorf("%w: expected a string, got %T", ErrNotSettable, value)
			}
			*field(v) = s
			return nil
		},
	}
}

// Fields is an accessor table describing a Go struct without reflection.
//
//	userFields := validator.Fields[User]{
//		"name": validator.StringField(func(u *User) *string { return &u.Name }),
//		"age":  validator.Getter(func(u *User) any { return u.Age }),
//	}
//	err := v.Validate("User", userFields.Of(&user))
type Fields[T any] map[string]Accessor[T]

// Of binds the table to a value.
func (f Fields[T]) Of(v *T) MutableSource {
	return fieldSource[T]{fields: f, value: v}
}

type fieldSource[T any] struct {
	fields Fields[T]
	value  *T
}

func (s fieldSource[T]) Lookup(property string) (any, bool) {
	acc, ok := s.fields[property]
	if !ok || acc.Get == nil || s.value == nil {
		return nil, false
	}
	return acc.Get(s.value), true
}

func (s fieldSource[T]) Set(property string, value any) error {
	acc, ok := s.fields[property]
	if !ok || s.value == nil {
		return fmt.Errorf("%w: %s", ErrPropertyNotFound, property)
	}
	if acc.Set == nil {
		return fmt.Errorf("%w: %s is read-only", ErrNotSettable, property)
	}
	return acc.Set(s.value, value)
}
