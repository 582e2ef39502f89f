package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/constraints/pkg/logger"
)

func TestValidationAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"target", logger.Target("User"), "target", "User"},
		{"property", logger.Property("email"), "property", "email"},
		{"kind", logger.Kind("is_email"), "kind", "is_email"},
		{"violations", logger.Violations(3), "violations", int64(3)},
		{"schema", logger.Schema("rules.yaml"), "schema", "rules.yaml"},
		{"component", logger.Component("cli"), "component", "cli"},
		{"duration", logger.Duration(2 * time.Second), "duration", 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}

func TestGroups(t *testing.T) {
	t.Parallel()

	attr := logger.Groups([]string{"create", "admin"})
	assert.Equal(t, "groups", attr.Key)
	assert.Equal(t, []string{"create", "admin"}, attr.Value.Any())

	empty := logger.Groups(nil)
	assert.Equal(t, []string{}, empty.Value.Any())
}

func TestError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
}

func TestErrors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))

	attr := logger.Errors(errors.New("a"), nil, errors.New("c"))
	assert.Equal(t, "errors", attr.Key)
	group := attr.Value.Group()
	assert.Len(t, group, 2)
	assert.Equal(t, "0", group[0].Key)
	assert.Equal(t, "2", group[1].Key)
}

func TestGroup(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, nil))
	log.Info("rule", logger.Group("rule", logger.Property("email"), logger.Kind("is_email")))

	assert.Contains(t, buf.String(), "rule.property=email")
	assert.Contains(t, buf.String(), "rule.kind=is_email")
}
