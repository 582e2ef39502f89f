package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// placeholderRegex finds named placeholders in the form %{name}.
var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// formatMessage substitutes %{name} placeholders from values. Unknown
// placeholders are kept as they are.
func formatMessage(tmpl string, values map[string]any) string {
	if !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := values[name]; ok {
			return formatValue(val)
		}
		return match
	})
}

func formatValue(v any) string {
	switch x := deref(v).(type) {
	case nil:
		return "null"
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339)
	case []any:
		parts := make([]string, len(x))
		for i, item := range x {
			parts[i] = formatValue(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(x)
	}
}
