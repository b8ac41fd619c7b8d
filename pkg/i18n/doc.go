// Package i18n loads translation catalogues and renders localized strings.
//
// Translations are nested maps keyed by language code at the top level and by
// dot-separated keys below it. A TranslationAdapter supplies them; adapters for
// in-memory maps and for any fs.FS (including embed.FS) holding YAML files are
// included.
//
// Requested languages are negotiated with golang.org/x/text/language, so
// "zh-CN" resolves to a "zh" catalogue and unknown tags fall back to the
// default language.
//
// # Usage
//
//	//go:embed locales/*.yaml
//	var locales embed.FS
//
//	adapter := i18n.NewEmbeddedFSAdapter(i18n.NewYAMLParser(), locales, "locales")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//	msg := tr.T("zh-CN", "greeting", "name", "Li")
//
// Placeholders use the %{name} form and are filled from key/value argument
// pairs. Missing keys render as the key itself unless WithFallbackToKey(false)
// is set.
//
// The Translator is safe for concurrent use.
package i18n
