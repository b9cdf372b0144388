package instructions

import "errors"

var (
	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrUnknownInstruction = errors.New("unknown instruction")
)
