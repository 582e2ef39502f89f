package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/constraints/pkg/predicate"
	"github.com/dmitrymomot/constraints/pkg/validator"
)

func TestDecodeOptions(t *testing.T) {
	t.Parallel()

	t.Run("nil gives zero options", func(t *testing.T) {
		opts, err := validator.DecodeOptions[predicate.EmailOptions](nil)
		require.NoError(t, err)
		assert.Equal(t, predicate.EmailOptions{}, opts)
	})

	t.Run("value and pointer pass through", func(t *testing.T) {
		want := predicate.FQDNOptions{AllowUnderscores: true}

		opts, err := validator.DecodeOptions[predicate.FQDNOptions](want)
		require.NoError(t, err)
		assert.Equal(t, want, opts)

		opts, err = validator.DecodeOptions[predicate.FQDNOptions](&want)
		require.NoError(t, err)
		assert.Equal(t, want, opts)
	})

	t.Run("map with snake case keys", func(t *testing.T) {
		opts, err := validator.DecodeOptions[predicate.URLOptions](map[string]any{
			"protocols":        []any{"https"},
			"require_protocol": true,
			"host_whitelist":   []string{"example.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"https"}, opts.Protocols)
		assert.True(t, opts.RequireProtocol)
		assert.Equal(t, []string{"example.com"}, opts.HostWhitelist)
	})

	t.Run("weakly typed input", func(t *testing.T) {
		opts, err := validator.DecodeOptions[predicate.CurrencyOptions](map[string]any{
			"require_symbol": "true",
			"symbol":         "€",
		})
		require.NoError(t, err)
		assert.True(t, opts.RequireSymbol)
		assert.Equal(t, "€", opts.Symbol)
	})

	t.Run("pointer bounds", func(t *testing.T) {
		opts, err := validator.DecodeOptions[predicate.FloatOptions](map[string]any{"min": 1.5})
		require.NoError(t, err)
		require.NotNil(t, opts.Min)
		assert.Equal(t, 1.5, *opts.Min)
		assert.Nil(t, opts.Max)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := validator.DecodeOptions[predicate.EmailOptions](map[string]any{"allow_everything": true})
		assert.Error(t, err)
	})

	t.Run("wrong shape", func(t *testing.T) {
		_, err := validator.DecodeOptions[predicate.EmailOptions]("strict")
		assert.Error(t, err)
	})
}
