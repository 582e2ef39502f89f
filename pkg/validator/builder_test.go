package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/constraints/pkg/predicate"
	"github.com/dmitrymomot/constraints/pkg/validator"
)

var (
	emailDefaults = predicate.EmailOptions{}
	intDefaults   = predicate.IntOptions{}
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("empty builder builds an empty registry", func(t *testing.T) {
		reg, err := validator.NewBuilder().Build()
		require.NoError(t, err)
		assert.Zero(t, reg.Len())
		assert.Empty(t, reg.Targets())
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := validator.NewBuilder().
			Register(validator.Descriptor{Kind: "is_magic", Target: "User", Property: "name"}).
			Build()
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrUnknownKind)
		assert.Contains(t, err.Error(), "is_magic")
	})

	t.Run("invalid pattern is reported by build", func(t *testing.T) {
		_, err := validator.NewBuilder().
			Target("User").
			Property("name", validator.Matches("(", "")).
			Build()
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidRule)
		assert.Contains(t, err.Error(), "User.name:matches")
	})

	t.Run("unsupported modifier", func(t *testing.T) {
		rule := validator.Matches("^a", "x")
		require.Error(t, rule.Err())
		assert.Equal(t, validator.KindMatches, rule.Kind())
	})

	t.Run("missing target or property", func(t *testing.T) {
		_, err := validator.NewBuilder().
			Register(validator.Descriptor{Kind: validator.KindIsAlpha, Target: "User"}).
			Build()
		assert.ErrorIs(t, err, validator.ErrInvalidDescriptor)
	})

	t.Run("wrong number of params", func(t *testing.T) {
		_, err := validator.NewBuilder().
			Register(validator.Descriptor{Kind: validator.KindContains, Target: "User", Property: "name"}).
			Build()
		assert.ErrorIs(t, err, validator.ErrInvalidRule)
	})

	t.Run("all problems are joined", func(t *testing.T) {
		_, err := validator.NewBuilder().
			Target("User").
			Property("name", validator.Matches("[", ""), validator.IsLength(5, 2)).
			Property("ip", validator.IsIP(5)).
			Build()
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidRule)
		assert.Contains(t, err.Error(), "User.name:matches")
		assert.Contains(t, err.Error(), "User.name:is_length")
		assert.Contains(t, err.Error(), "User.ip:is_ip")
	})

	t.Run("rule constructors validate their arguments", func(t *testing.T) {
		assert.Error(t, validator.IsUUID(2).Err())
		assert.Error(t, validator.IsISBN(11).Err())
		assert.Error(t, validator.IsDivisibleBy(0).Err())
		assert.Error(t, validator.IsIn(nil).Err())
		assert.Error(t, validator.IsMobilePhone("xx-XX").Err())
		assert.Error(t, validator.IsByteLength(-1, 3).Err())
		assert.NoError(t, validator.IsLength(3, validator.Unbounded).Err())
		assert.NoError(t, validator.IsMobilePhone(predicate.AnyLocale).Err())
	})
}

func TestBuilder_Register_RejectsUnsatisfiableParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		kind   validator.Kind
		params []any
	}{
		{"zero divisor", validator.KindIsDivisibleBy, []any{0}},
		{"negative min", validator.KindIsLength, []any{-1, 3}},
		{"max below min", validator.KindIsLength, []any{5, 2}},
		{"byte bounds out of order", validator.KindIsByteLength, []any{4, 1}},
		{"ip version", validator.KindIsIP, []any{7}},
		{"isbn version", validator.KindIsISBN, []any{11}},
		{"uuid version", validator.KindIsUUID, []any{2}},
		{"phone locale", validator.KindIsMobilePhone, []any{"xx-XX"}},
		{"empty allowed values", validator.KindIsIn, []any{[]any{}}},
		{"broken pattern", validator.KindMatches, []any{"("}},
		{"integer param overflow", validator.KindIsLength, []any{1e30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validator.Descriptor{Kind: tt.kind, Target: "User", Property: "field", Params: tt.params}

			_, err := validator.NewBuilder().Register(d).Build()
			assert.ErrorIs(t, err, validator.ErrInvalidRule)

			_, err = validator.Evaluate(d, "x")
			assert.ErrorIs(t, err, validator.ErrInvalidRule)
		})
	}

	t.Run("unbounded max is accepted", func(t *testing.T) {
		_, err := validator.NewBuilder().
			Register(validator.Descriptor{
				Kind:     validator.KindIsLength,
				Target:   "User",
				Property: "name",
				Params:   []any{2, validator.Unbounded},
			}).
			Build()
		assert.NoError(t, err)
	})
}

func TestBuilder_ZeroValue(t *testing.T) {
	t.Parallel()

	var b validator.Builder
	reg, err := b.Register(validator.Descriptor{Kind: validator.KindIsAlpha, Target: "User", Property: "name"}).Build()
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())

	var other validator.Builder
	reg, err = other.Target("User").Property("name", validator.IsAlpha()).Build()
	require.NoError(t, err)
	assert.True(t, reg.Has("User"))
}

func TestBuilder_NormalizesParams(t *testing.T) {
	t.Parallel()

	reg, err := validator.NewBuilder().
		Register(validator.Descriptor{
			Kind:     validator.KindIsLength,
			Target:   "User",
			Property: "name",
			Params:   []any{float64(2), float64(5)},
		}).
		Register(validator.Descriptor{
			Kind:     validator.KindIsInt,
			Target:   "User",
			Property: "age",
			Params:   []any{map[string]any{"min": 18, "max": 99}},
		}).
		Register(validator.Descriptor{
			Kind:     validator.KindIsIn,
			Target:   "User",
			Property: "role",
			Params:   []any{[]string{"admin", "user"}},
		}).
		Build()
	require.NoError(t, err)

	name := reg.RulesForProperty("User", "name")
	require.Len(t, name, 1)
	assert.Equal(t, []any{2, 5}, name[0].Params)

	age := reg.RulesForProperty("User", "age")
	require.Len(t, age, 1)
	opts, ok := age[0].Params[0].(predicate.IntOptions)
	require.True(t, ok)
	require.NotNil(t, opts.Min)
	require.NotNil(t, opts.Max)
	assert.Equal(t, int64(18), *opts.Min)
	assert.Equal(t, int64(99), *opts.Max)

	role := reg.RulesForProperty("User", "role")
	require.Len(t, role, 1)
	assert.Equal(t, []any{"admin", "user"}, role[0].Params[0])
}

func TestBuilder_UnknownOptionKey(t *testing.T) {
	t.Parallel()

	_, err := validator.NewBuilder().
		Register(validator.Descriptor{
			Kind:     validator.KindIsEmail,
			Target:   "User",
			Property: "email",
			Params:   []any{map[string]any{"require_magic": true}},
		}).
		Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, validator.ErrInvalidRule)
}

func TestBuilder_Isolation(t *testing.T) {
	t.Parallel()

	b := validator.NewBuilder()
	b.Target("User").Property("name", validator.IsAlpha())

	first, err := b.Build()
	require.NoError(t, err)

	b.Target("User").Property("name", validator.IsLowercase())
	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 2, second.Len())
}

func TestBuilder_MustBuild(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		validator.NewBuilder().
			Target("User").
			Property("name", validator.Matches("(", "")).
			MustBuild()
	})

	assert.NotPanics(t, func() {
		validator.NewBuilder().Target("User").Property("name", validator.IsAlpha()).MustBuild()
	})
}

func TestRule_Bind(t *testing.T) {
	t.Parallel()

	rule := validator.Contains("foo",
		validator.Message("needs foo"),
		validator.Groups("create"),
		validator.Groups("update"),
		validator.Always(),
	)

	d, err := rule.Bind("User", "name")
	require.NoError(t, err)
	assert.Equal(t, validator.Descriptor{
		Kind:     validator.KindContains,
		Target:   "User",
		Property: "name",
		Params:   []any{"foo"},
		Groups:   []string{"create", "update"},
		Message:  "needs foo",
		Always:   true,
	}, d)

	_, err = validator.Matches("(", "").Bind("User", "name")
	assert.True(t, errors.Is(err, validator.ErrInvalidRule))
}

func TestKinds(t *testing.T) {
	t.Parallel()

	kinds := validator.Kinds()
	assert.Len(t, kinds, 51)
	assert.Contains(t, kinds, validator.KindContains)
	assert.Contains(t, kinds, validator.KindMatches)
	assert.Contains(t, kinds, validator.KindNormalizeEmail)

	assert.True(t, validator.KindTrim.IsSanitizer())
	assert.False(t, validator.KindContains.IsSanitizer())
	assert.True(t, validator.KindIsUUID.Known())
	assert.False(t, validator.Kind("nope").Known())
}
