package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/constraints/pkg/predicate"
)

func TestIsAlpha(t *testing.T) {
	t.Parallel()

	assert.True(t, predicate.IsAlpha("abc"))
	assert.True(t, predicate.IsAlpha("ABC"))
	assert.False(t, predicate.IsAlpha("abc1"))
	assert.False(t, predicate.IsAlpha("a b"))
	assert.False(t, predicate.IsAlpha(""))
}

func TestIsAlphanumeric(t *testing.T) {
	t.Parallel()

	assert.True(t, predicate.IsAlphanumeric("abc123"))
	assert.False(t, predicate.IsAlphanumeric("abc_123"))
	assert.False(t, predicate.IsAlphanumeric("é1"))
	assert.False(t, predicate.IsAlphanumeric(""))
}

func TestIsASCII(t *testing.T) {
	t.Parallel()

	t.Run("accepts plain ascii", func(t *testing.T) {
		assert.True(t, predicate.IsASCII("foobar123"))
		assert.True(t, predicate.IsASCII("test@example.com"))
	})

	t.Run("rejects full width and empty input", func(t *testing.T) {
		assert.False(t, predicate.IsASCII("ｆｏｏbar"))
		assert.False(t, predicate.IsASCII("ｘｙｚ０９８"))
		assert.False(t, predicate.IsASCII(""))
	})
}

func TestIsMultibyte(t *testing.T) {
	t.Parallel()

	assert.True(t, predicate.IsMultibyte("ひらがな"))
	assert.True(t, predicate.IsMultibyte("abc中文"))
	assert.False(t, predicate.IsMultibyte("abc"))
	assert.False(t, predicate.IsMultibyte(""))
}

func TestIsSurrogatePair(t *testing.T) {
	t.Parallel()

	assert.True(t, predicate.IsSurrogatePair("𠮷野𠮷"))
	assert.True(t, predicate.IsSurrogatePair("ABC千𥧄1-2-3"))
	assert.False(t, predicate.IsSurrogatePair("abc"))
	assert.False(t, predicate.IsSurrogatePair("ひらがな"))
}

func TestCase(t *testing.T) {
	t.Parallel()

	t.Run("lowercase", func(t *testing.T) {
		assert.True(t, predicate.IsLowercase("abc"))
		assert.True(t, predicate.IsLowercase("abc123"))
		assert.True(t, predicate.IsLowercase("tr ç"))
		assert.False(t, predicate.IsLowercase("Abc"))
		assert.False(t, predicate.IsLowercase("ABC"))
	})

	t.Run("uppercase", func(t *testing.T) {
		assert.True(t, predicate.IsUppercase("ABC"))
		assert.True(t, predicate.IsUppercase("ABC123"))
		assert.False(t, predicate.IsUppercase("ABc"))
		assert.False(t, predicate.IsUppercase("abc"))
	})
}

func TestWidth(t *testing.T) {
	t.Parallel()

	t.Run("full width", func(t *testing.T) {
		assert.True(t, predicate.IsFullWidth("ひらがな・カタカナ、．漢字"))
		assert.True(t, predicate.IsFullWidth("３ー０　ａ＠ｃｏｍ"))
		assert.True(t, predicate.IsFullWidth("Ｆｶﾀｶﾅﾞﾬ"))
		assert.False(t, predicate.IsFullWidth("abc"))
		assert.False(t, predicate.IsFullWidth("ｶﾀｶﾅ"))
		assert.False(t, predicate.IsFullWidth(""))
	})

	t.Run("half width", func(t *testing.T) {
		assert.True(t, predicate.IsHalfWidth(`!"#$%&()<>/+=-_? ~^|.,@{}[]`))
		assert.True(t, predicate.IsHalfWidth("l-btn_02--active"))
		assert.True(t, predicate.IsHalfWidth("ｶﾀｶﾅ"))
		assert.False(t, predicate.IsHalfWidth("あいうえお"))
		assert.False(t, predicate.IsHalfWidth("００１１"))
	})

	t.Run("variable width", func(t *testing.T) {
		assert.True(t, predicate.IsVariableWidth("ひらがなカタカナ漢字ABCDE"))
		assert.True(t, predicate.IsVariableWidth("３ー０123"))
		assert.False(t, predicate.IsVariableWidth("abc"))
		assert.False(t, predicate.IsVariableWidth("ひらがな"))
		assert.False(t, predicate.IsVariableWidth(""))
	})
}

func TestIsBoolean(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"true", "false", "1", "0"} {
		assert.True(t, predicate.IsBoolean(s), s)
	}
	for _, s := range []string{"TRUE", "yes", "", "2"} {
		assert.False(t, predicate.IsBoolean(s), s)
	}
}
