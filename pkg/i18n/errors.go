package i18n

import "errors"

var (
	ErrNilAdapter        = errors.New("i18n: adapter is nil")
	ErrNoTranslations    = errors.New("i18n: no translations found")
	ErrEmptyLanguageCode = errors.New("i18n: empty language code")

	ErrYAMLParsingCancelled = errors.New("i18n: yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("i18n: failed to parse YAML content")

	ErrLoadingCancelled = errors.New("i18n: loading translations cancelled")
	ErrFailedToReadDir  = errors.New("i18n: failed to read translations directory")
	ErrFailedToReadFile = errors.New("i18n: failed to read translation file")
)
