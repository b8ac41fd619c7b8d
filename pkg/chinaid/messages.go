package chinaid

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrymomot/chinaid/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewTranslator loads the bundled English and Chinese translations.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	adapter := i18n.NewEmbeddedFSAdapter(i18n.NewYAMLParser(), locales, "locales")
	return i18n.NewTranslator(ctx, adapter, opts...)
}

// NewTranslatorFromConfig is NewTranslator with the default language taken from cfg.
// Options in opts are applied after it and may override it.
func NewTranslatorFromConfig(ctx context.Context, cfg Config, opts ...i18n.Option) (*i18n.Translator, error) {
	opts = append([]i18n.Option{i18n.WithDefaultLanguage(cfg.DefaultLanguage)}, opts...)
	return NewTranslator(ctx, opts...)
}

// ValidationMessages adapts tr to the callback taken by validator.ValidationErrors.Translate.
// Values are stringified with fmt.Sprint.
func ValidationMessages(tr *i18n.Translator, lang string) func(key string, values map[string]any) string {
	return func(key string, values map[string]any) string {
		args := make([]string, 0, len(values)*2)
		for k, v := range values {
			args = append(args, k, fmt.Sprint(v))
		}
		return tr.T(lang, key, args...)
	}
}

// Message renders a validation error in the given language.
// Positions are shown one-based. Errors from other packages get the generic message; nil yields "".
func Message(tr *i18n.Translator, lang string, err error) string {
	if err == nil {
		return ""
	}
	var (
		lengthErr   *LengthError
		digitErr    *DigitError
		checksumErr *ChecksumError
		dateErr     *BirthDateError
	)
	switch {
	case errors.As(err, &lengthErr):
		key := "chinaid.errors.length_at_least"
		if lengthErr.Exact {
			key = "chinaid.errors.length"
		}
		return tr.T(lang, key,
			"want", strconv.Itoa(lengthErr.Want),
			"length", strconv.Itoa(lengthErr.Length),
		)
	case errors.As(err, &digitErr):
		return tr.T(lang, "chinaid.errors.digit",
			"char", string(digitErr.Char),
			"position", strconv.Itoa(digitErr.Position+1),
		)
	case errors.As(err, &checksumErr):
		return tr.T(lang, "chinaid.errors.checksum",
			"expected", string(checksumErr.Expected),
			"actual", string(checksumErr.Actual),
		)
	case errors.As(err, &dateErr):
		return tr.T(lang, "chinaid.errors.birth_date", "text", dateErr.Text)
	default:
		return tr.T(lang, "chinaid.errors.invalid")
	}
}
