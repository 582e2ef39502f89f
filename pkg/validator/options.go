package validator

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeOptions converts raw into an option struct such as
// predicate.EmailOptions. raw may already be a T or *T, nil (zero options) or
// a map decoded from JSON or YAML, whose keys follow the mapstructure tags.
// Unknown keys are rejected.
func DecodeOptions[T any](raw any) (T, error) {
	var out T

	switch v := raw.(type) {
	case nil:
		return out, nil
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, nil
		}
		return *v, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return out, fmt.Errorf("create options decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return out, fmt.Errorf("decode %T: %w", out, err)
	}
	return out, nil
}

// optionsAt returns the options stored at params[i] or the zero value.
// Params are normalized by bind before checks run, so the assertion holds.
func optionsAt[T any](params []any, i int) T {
	if i < len(params) {
		if o, ok := params[i].(T); ok {
			return o
		}
	}
	var zero T
	return zero
}
