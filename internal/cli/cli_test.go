package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rulesFile = "testdata/rules.yaml"

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	// Settings come from flags only. t.Setenv restores the original values.
	for _, key := range []string{"CONSTRAINTS_SCHEMA", "CONSTRAINTS_GROUPS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("CONSTRAINTS_STRICT", "true")
	t.Setenv("CONSTRAINTS_OUTPUT", "table")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("APP_ENV", "development")

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run(context.Background(), NewRootCmd(), args, strings.NewReader(stdin), stdout, stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestValidate(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		res := execute(t, "", "validate", "-s", rulesFile, "-t", "User", "testdata/valid.json")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "User: valid")
	})

	t.Run("violations in table", func(t *testing.T) {
		res := execute(t, "", "validate", "-s", rulesFile, "-t", "User", "testdata/invalid.yaml")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stdout, "is_email")
		assert.Contains(t, res.stdout, "is_length")
		assert.Contains(t, res.stdout, "is_int")
		assert.Contains(t, res.stdout, "User: 3 violation(s)")
		assert.Contains(t, res.stderr, "document rejected")
		assert.Contains(t, res.stderr, "command=validate")
		assert.NotContains(t, res.stderr, "Error:")
	})

	t.Run("groups", func(t *testing.T) {
		res := execute(t, "", "validate", "-s", rulesFile, "-t", "User", "-g", "create", "-o", "json", "testdata/invalid.yaml")
		assert.Equal(t, 1, res.code)

		var report struct {
			Valid      bool     `json:"valid"`
			Groups     []string `json:"groups"`
			Violations []struct {
				Field string `json:"field"`
				Kind  string `json:"kind"`
			} `json:"violations"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
		assert.False(t, report.Valid)
		assert.Equal(t, []string{"create"}, report.Groups)
		require.Len(t, report.Violations, 1)
		assert.Equal(t, "email", report.Violations[0].Field)
	})

	t.Run("stdin", func(t *testing.T) {
		res := execute(t, `{"email": "a@b.io", "name": "Al", "age": 20}`, "validate", "-s", rulesFile, "-t", "User")
		assert.Equal(t, 0, res.code, res.stderr)

		res = execute(t, "email: x\nname: Al\nage: 20\n", "validate", "-s", rulesFile, "-t", "User", "-")
		assert.Equal(t, 1, res.code)
	})

	t.Run("sanitize", func(t *testing.T) {
		res := execute(t, "", "validate", "-s", rulesFile, "-t", "User", "--sanitize", "-o", "json", "testdata/dirty.yaml")
		assert.Equal(t, 0, res.code, res.stderr)

		var report struct {
			Valid      bool           `json:"valid"`
			Violations []any          `json:"violations"`
			Document   map[string]any `json:"document"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
		assert.True(t, report.Valid)
		assert.Empty(t, report.Violations)
		assert.NotNil(t, report.Violations)
		assert.Equal(t, "janedoe@gmail.com", report.Document["email"])
	})

	t.Run("groups skip ungrouped sanitizers", func(t *testing.T) {
		res := execute(t, "", "validate", "-s", rulesFile, "-t", "User", "--sanitize", "-g", "create", "-o", "json", "testdata/dirty.yaml")
		assert.Equal(t, 1, res.code, res.stderr)
		assert.Contains(t, res.stdout, "  Jane.Doe+news@GoogleMail.com ")
	})

	t.Run("without sanitize dirty email fails", func(t *testing.T) {
		res := execute(t, "", "validate", "-s", rulesFile, "-t", "User", "testdata/dirty.yaml")
		assert.Equal(t, 1, res.code)
	})
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing target flag", []string{"validate", "-s", rulesFile, "testdata/valid.json"}, `"target" not set`},
		{"missing schema", []string{"validate", "-t", "User", "testdata/valid.json"}, "no schema file"},
		{"unknown target in strict mode", []string{"validate", "-s", rulesFile, "-t", "Invoice", "testdata/valid.json"}, "unknown target"},
		{"missing document", []string{"validate", "-s", rulesFile, "-t", "User", "testdata/nope.json"}, "read document"},
		{"bad output", []string{"validate", "-s", rulesFile, "-t", "User", "-o", "xml", "testdata/valid.json"}, "CONSTRAINTS_OUTPUT"},
		{"bad schema", []string{"rules", "-s", "testdata/valid.json"}, "failed to parse JSON schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, "", tt.args...)
			assert.Equal(t, 2, res.code)
			assert.Contains(t, res.stderr, "Error:")
			assert.Contains(t, res.stderr, tt.want)
		})
	}

	t.Run("non object document", func(t *testing.T) {
		res := execute(t, "- a\n- b\n", "validate", "-s", rulesFile, "-t", "User")
		assert.Equal(t, 2, res.code)
		assert.Contains(t, res.stderr, "invalid document")
	})
}

func TestRules(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		res := execute(t, "", "rules", "-s", rulesFile)
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "normalize_email")
		assert.Contains(t, res.stdout, "is_uuid")
		assert.NotContains(t, res.stdout, "is_alpha")
		assert.Contains(t, res.stdout, "(6 rules)")
	})

	t.Run("json for one target and group", func(t *testing.T) {
		res := execute(t, "", "rules", "-s", rulesFile, "-t", "User", "-g", "create", "-o", "json")
		assert.Equal(t, 0, res.code, res.stderr)

		var rules []struct {
			Property string `json:"property"`
			Kind     string `json:"kind"`
			Always   bool   `json:"always"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &rules))
		require.Len(t, rules, 2)
		assert.Equal(t, "is_email", rules[0].Kind)
		assert.True(t, rules[0].Always)
		assert.Equal(t, "is_alpha", rules[1].Kind)
	})

	t.Run("unknown target", func(t *testing.T) {
		res := execute(t, "", "rules", "-s", rulesFile, "-t", "Invoice")
		assert.Equal(t, 2, res.code)
		assert.Contains(t, res.stderr, `"Invoice"`)
	})

	t.Run("schema from env file", func(t *testing.T) {
		res := execute(t, "", "rules", "--env-file", "testdata/cli.env", "-o", "json")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, `"target": "Order"`)
	})
}

func TestKinds(t *testing.T) {
	res := execute(t, "", "kinds")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "is_mongo_id")
	assert.Contains(t, res.stdout, "sanitizer")

	res = execute(t, "", "kinds", "-o", "json")
	var kinds []kindView
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &kinds))
	assert.Len(t, kinds, 51)
}

func TestVersion(t *testing.T) {
	res := execute(t, "", "version")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "constraints dev\n", res.stdout)
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", formatValue(nil))
	assert.Equal(t, `"x"`, formatValue("x"))
	assert.Equal(t, "12", formatValue(12))
	assert.Equal(t, `["a", 1]`, formatValue([]any{"a", 1}))
}
