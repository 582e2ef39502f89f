package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Target records the validation target under the key "target".
func Target(name string) slog.Attr {
	return slog.String("target", name)
}

// Property records the property name under the key "property".
func Property(name string) slog.Attr {
	return slog.String("property", name)
}

// Kind records the rule kind under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Groups records the requested validation groups under the key "groups".
// An empty list is logged as an empty group list, not omitted.
func Groups(groups []string) slog.Attr {
	if groups == nil {
		groups = []string{}
	}
	return slog.Any("groups", groups)
}

// Violations records the number of violations under the key "violations".
func Violations(n int) slog.Attr {
	return slog.Int("violations", n)
}

// Schema records the schema file path under the key "schema".
func Schema(path string) slog.Attr {
	return slog.String("schema", path)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
