package shell

import "errors"

var ErrRenderFailed = errors.New("failed to render shell")
