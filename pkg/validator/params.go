package validator

import (
	"fmt"
	"strconv"
)

func anyParam(v any) (any, error) {
	return v, nil
}

func stringParam(v any) (any, error) {
	s, ok := asString(deref(v))
	if !ok {
		return nil, fmt.Errorf("expected a string, got %T", v)
	}
	return s, nil
}

func intParam(v any) (any, error) {
	f, ok := asNumber(deref(v))
	if !ok {
		return nil, fmt.Errorf("expected an integer, got %v", v)
	}
	n, ok := floatToInt64(f)
	if !ok || int64(int(n)) != n {
		return nil, fmt.Errorf("expected an integer, got %v", v)
	}
	return int(n), nil
}

func floatParam(v any) (any, error) {
	f, ok := asNumber(deref(v))
	if !ok || !isFinite(f) {
		return nil, fmt.Errorf("expected a number, got %v", v)
	}
	return f, nil
}

func timeParam(v any) (any, error) {
	t, ok := asTime(deref(v))
	if !ok {
		return nil, fmt.Errorf("expected a date, got %v", v)
	}
	return t, nil
}

func listParam(v any) (any, error) {
	list, ok := asList(deref(v))
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", v)
	}
	return list, nil
}

func optionsParam[T any](v any) (any, error) {
	return DecodeOptions[T](v)
}

// bindParams checks arity against specs and converts each raw param.
func bindParams(specs []paramSpec, required int, raw []any) ([]any, error) {
	if len(raw) < required || len(raw) > len(specs) {
		return nil, fmt.Errorf("expects %d to %d params, got %d", required, len(specs), len(raw))
	}

	params := make([]any, len(raw))
	for i, v := range raw {
		converted, err := specs[i].conv(v)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", specs[i].name, err)
		}
		params[i] = converted
	}
	return params, nil
}

func boolParam(v any) (any, error) {
	switch x := deref(v).(type) {
	case bool:
		return x, nil
	case string:
		if b, err := strconv.ParseBool(x); err == nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("expected a boolean, got %v", v)
}
