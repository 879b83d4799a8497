package jpfield

import "errors"

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidDate  = errors.New("invalid date")
)
