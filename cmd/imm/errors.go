package imm

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidFormat   = errors.New("invalid output format")
)
