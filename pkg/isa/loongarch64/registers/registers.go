// Package registers describes the LoongArch64 general purpose registers as they appear
// in assembly and in instruction encodings.
package registers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/lacodec/pkg/utils"
)

// Register fields are 5 bits wide
const EncodingBits = 5

const TotalRegisters = 1 << EncodingBits

var (
	ErrUnknownRegister = errors.New("unknown register")
	ErrInvalidRegister = errors.New("invalid register number")
)

// A general purpose register, identified by its number
type Register uint8

// ABI names of the registers, indexed by register number
var abiNames = [TotalRegisters]string{
	"zero", "ra", "tp", "sp", "a0", "a1", "a2", "a3",
	"a4", "a5", "a6", "a7", "t0", "t1", "t2", "t3",
	"t4", "t5", "t6", "t7", "t8", "u0", "fp", "s0",
	"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8",
}

var registersByName = func() map[string]Register {
	names := make(map[string]Register, 2*TotalRegisters+1)

	for i, name := range abiNames {
		names[name] = Register(i)
		names[fmt.Sprintf("r%v", i)] = Register(i)
	}

	names["s9"] = Register(22)

	return names
}()

// Returns the register with the given number, or an error if there is no such register
func FromNumber(number int64) (Register, error) {
	if number < 0 || number >= TotalRegisters {
		return 0, utils.MakeError(ErrInvalidRegister, "%v, expected [0, %v)", number, TotalRegisters)
	}

	return Register(number), nil
}

// Parses a register name, with or without the leading '$'. Both ABI names (a0, sp) and
// numeric names (r4, r3) are accepted
func Parse(name string) (Register, error) {
	if register, ok := registersByName[strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "$"))]; ok {
		return register, nil
	}

	return 0, utils.MakeError(ErrUnknownRegister, "'%v'", name)
}

// Returns the ABI name of the register
func (r Register) Name() string {
	return abiNames[r%TotalRegisters]
}

func (r Register) String() string {
	return "$" + r.Name()
}

// Returns the register number placed at the given instruction word bit
func (r Register) Encode(bit int) uint32 {
	var word uint32
	utils.CreateBitView(&word).Write(uint32(r), bit, EncodingBits)
	return word
}
