package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no other default is configured.
const DefaultLanguage = "en"

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Translator renders translations loaded from an adapter.
type Translator struct {
	mu             sync.RWMutex
	translations   map[string]map[string]any
	langs          []string
	matcher        language.Matcher
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	adapter        TranslationAdapter
}

// NewTranslator loads translations from adapter and prepares language negotiation.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:       adapter,
	}
	for _, opt := range opts {
		opt(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload fetches translations from the adapter again and swaps them in atomically.
// On error the previous translations stay in place.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	for lang, m := range translations {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if m == nil {
			return fmt.Errorf("i18n: nil translations map for language %q", lang)
		}
	}

	langs := orderedLanguages(translations, t.defaultLang)

	t.mu.Lock()
	t.translations = translations
	t.langs = langs
	t.matcher = newMatcher(langs)
	t.mu.Unlock()

	t.logger.DebugContext(ctx, "translations loaded", "languages", langs)
	return nil
}

// orderedLanguages puts the default language first: the matcher falls back to index 0.
func orderedLanguages(translations map[string]map[string]any, defaultLang string) []string {
	langs := make([]string, 0, len(translations))
	for lang := range translations {
		if lang != defaultLang {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)
	if _, ok := translations[defaultLang]; ok {
		langs = append([]string{defaultLang}, langs...)
	}
	return langs
}

func newMatcher(langs []string) language.Matcher {
	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tags = append(tags, language.Make(lang))
	}
	return language.NewMatcher(tags)
}

// SupportedLanguages returns the loaded language codes, default first.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.langs)
}

// Match resolves a BCP 47 tag such as "zh-CN" to a loaded language code.
// Unknown or malformed tags resolve to the default language.
func (t *Translator) Match(lang string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.match(lang)
}

func (t *Translator) match(lang string) string {
	if _, ok := t.translations[lang]; ok {
		return lang
	}
	if len(t.langs) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(language.Make(lang))
	if conf == language.No {
		return t.langs[0]
	}
	return t.langs[idx]
}

// HasTranslation reports whether key exists for the negotiated language.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := lookup(t.translations[t.match(lang)], key)
	return ok
}

// T translates key. Args are key/value pairs substituted into %{key} placeholders;
// an odd trailing argument is ignored.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	resolved := t.match(lang)
	val, ok := lookup(t.translations[resolved], key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", resolved, "key", key)
		}
		if t.fallbackToKey {
			return substitute(key, args)
		}
		return ""
	}
	return substitute(val, args)
}

// lookup walks dot-separated keys through nested maps.
func lookup(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	var current any = m
	for part := range strings.SplitSeq(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		if current, ok = node[part]; !ok {
			return "", false
		}
	}
	switch v := current.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
