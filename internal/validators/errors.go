package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidField   = errors.New("invalid field")
	ErrEndBeforeStart = errors.New("slot must end after it starts")
)
