package validator

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

type patternKey struct {
	pattern   string
	modifiers string
}

// patterns caches compiled Matches expressions.
var patterns sync.Map

func compilePattern(pattern, modifiers string) (*regexp.Regexp, error) {
	key := patternKey{pattern: pattern, modifiers: modifiers}
	if cached, ok := patterns.Load(key); ok {
		return cached.(*regexp.Regexp), nil
	}

	var flags strings.Builder
	for _, m := range modifiers {
		switch m {
		case 'i', 'm', 's':
			if !strings.ContainsRune(flags.String(), m) {
				flags.WriteRune(m)
			}
		case 'g', 'u', 'y':
		default:
			return nil, fmt.Errorf("unsupported pattern modifier %q", m)
		}
	}

	expr := pattern
	if flags.Len() > 0 {
		expr = "(?" + flags.String() + ")" + pattern
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}

	patterns.Store(key, re)
	return re, nil
}
