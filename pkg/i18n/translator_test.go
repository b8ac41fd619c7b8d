package i18n_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/chinaid/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Translations: map[string]map[string]any{
		"en": {
			"greeting": "Hello, %{name}!",
			"nested": map[string]any{
				"deep": map[string]any{"key": "Deep value"},
			},
		},
		"zh": {
			"greeting": "你好，%{name}！",
		},
	}}
	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty language code", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Translations: map[string]map[string]any{"": {"k": "v"}}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrEmptyLanguageCode)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewTranslator(ctx, &i18n.MapAdapter{})
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("default language first", func(t *testing.T) {
		tr := newTestTranslator(t, i18n.WithDefaultLanguage("zh"))
		assert.Equal(t, []string{"zh", "en"}, tr.SupportedLanguages())
	})
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	t.Run("substitutes named parameters", func(t *testing.T) {
		assert.Equal(t, "Hello, Li!", tr.T("en", "greeting", "name", "Li"))
		assert.Equal(t, "你好，Li！", tr.T("zh", "greeting", "name", "Li"))
	})

	t.Run("keeps unknown placeholders", func(t *testing.T) {
		assert.Equal(t, "Hello, %{name}!", tr.T("en", "greeting"))
		assert.Equal(t, "Hello, %{name}!", tr.T("en", "greeting", "other", "x"))
	})

	t.Run("nested keys", func(t *testing.T) {
		assert.Equal(t, "Deep value", tr.T("en", "nested.deep.key"))
	})

	t.Run("map value is not a translation", func(t *testing.T) {
		assert.Equal(t, "nested.deep", tr.T("en", "nested.deep"))
	})

	t.Run("missing key falls back to key", func(t *testing.T) {
		assert.Equal(t, "missing.key", tr.T("en", "missing.key"))
	})

	t.Run("missing key without fallback", func(t *testing.T) {
		strict := newTestTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, strict.T("en", "missing.key"))
	})

	t.Run("region tags negotiate to base language", func(t *testing.T) {
		assert.Equal(t, "你好，Li！", tr.T("zh-CN", "greeting", "name", "Li"))
		assert.Equal(t, "Hello, Li!", tr.T("en-GB", "greeting", "name", "Li"))
	})

	t.Run("unsupported language uses default", func(t *testing.T) {
		assert.Equal(t, "Hello, Li!", tr.T("fr", "greeting", "name", "Li"))
		assert.Equal(t, "Hello, Li!", tr.T("", "greeting", "name", "Li"))
		assert.Equal(t, "Hello, Li!", tr.T("not a tag!", "greeting", "name", "Li"))
	})
}

func TestTranslator_Match(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.Equal(t, "zh", tr.Match("zh"))
	assert.Equal(t, "zh", tr.Match("zh-CN"))
	assert.Equal(t, "en", tr.Match("en-US"))
	assert.Equal(t, "en", tr.Match("de"))
}

func TestTranslator_HasTranslation(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.True(t, tr.HasTranslation("en", "nested.deep.key"))
	assert.True(t, tr.HasTranslation("zh-CN", "greeting"))
	assert.False(t, tr.HasTranslation("zh", "nested.deep.key"))
	assert.False(t, tr.HasTranslation("en", "nested"))
}

func TestTranslator_Reload(t *testing.T) {
	t.Parallel()
	adapter := &i18n.MapAdapter{Translations: map[string]map[string]any{
		"en": {"title": "Old"},
	}}
	tr, err := i18n.NewTranslator(context.Background(), adapter)
	require.NoError(t, err)
	assert.Equal(t, "Old", tr.T("en", "title"))

	adapter.Translations = map[string]map[string]any{
		"en": {"title": "New"},
		"zh": {"title": "新"},
	}
	require.NoError(t, tr.Reload(context.Background()))
	assert.Equal(t, "New", tr.T("en", "title"))
	assert.Equal(t, "新", tr.T("zh-CN", "title"))

	adapter.Translations = map[string]map[string]any{"": {"title": "x"}}
	require.Error(t, tr.Reload(context.Background()))
	assert.Equal(t, "New", tr.T("en", "title"))
}
