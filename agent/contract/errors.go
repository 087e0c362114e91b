package contract

import "errors"

var (
	ErrDecode     = errors.New("message decode failed")
	ErrEncode     = errors.New("message encode failed")
	ErrValidation = errors.New("validation failed")
)
