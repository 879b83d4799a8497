package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrNilAdapter          = errors.New("i18n: nil translation adapter")
	ErrInvalidCatalog      = errors.New("i18n: invalid catalog")
	ErrFailedToMarshalJSON = errors.New("i18n: encode catalog as JSON")

	ErrYAMLParsingCancelled = errors.New("i18n: yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("i18n: invalid yaml catalog")

	ErrLoadingTranslationsCancelled = errors.New("i18n: loading cancelled")
	ErrFailedToReadDirectory        = errors.New("i18n: read catalog directory")
	ErrFailedToReadFile             = errors.New("i18n: read catalog file")
	ErrFailedToParseFile            = errors.New("i18n: parse catalog file")
	ErrNoTranslationFiles           = errors.New("i18n: no catalog files")
)

// ErrLanguageNotSupported is returned for a language with no catalog.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("i18n: language %q not supported", e.Lang)
}
