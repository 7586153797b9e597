package pak

import "errors"

var (
	ErrFormat        = errors.New("pak: not a valid PACK file")
	ErrNameTooLong   = errors.New("pak: name too long")
	ErrUnexpectedEOF = errors.New("pak: unexpected end of stream")
	ErrLimitExceeded = errors.New("pak: limit exceeded")
	ErrValidation    = errors.New("pak: validation failed")
)
