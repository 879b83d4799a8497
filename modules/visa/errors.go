package visa

import "errors"

var (
	ErrRender      = errors.New("visa: failed to render view")
	ErrUnknownPage = errors.New("visa: unknown page")
	ErrNoLocales   = errors.New("visa: no locales loaded")
)
