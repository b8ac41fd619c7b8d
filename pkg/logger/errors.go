package logger

import "errors"

var (
	ErrInvalidFormat = errors.New("logger: invalid format")
	ErrInvalidLevel  = errors.New("logger: invalid level")
)
