package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/imms"
	"github.com/Manu343726/lacodec/pkg/utils"
)

// Constains information about all implemented instructions
type InstructionsDescriptor struct {
	instructions []*InstructionDescriptor
	byMnemonic   map[string]*InstructionDescriptor
}

// Returns all implemented instructions, in declaration order
func (d *InstructionsDescriptor) AllInstructions() []*InstructionDescriptor {
	return d.instructions
}

// Returns the instruction with the given mnemonic (case insensitive)
func (d *InstructionsDescriptor) Instruction(mnemonic string) (*InstructionDescriptor, error) {
	if instruction, hasInstruction := d.byMnemonic[strings.ToLower(mnemonic)]; hasInstruction {
		return instruction, nil
	} else {
		return nil, utils.MakeError(ErrUnknownInstruction, "no instruction implemented for mnemonic '%v'", mnemonic)
	}
}

// Returns the number of bits of a machine instruction
func (d *InstructionsDescriptor) InstructionBits() int {
	return imms.InstructionBits
}

// Returns the number of bytes of a machine instruction
func (d *InstructionsDescriptor) InstructionBytes() int {
	return d.InstructionBits() / utils.BitsPerByte
}

func checkInstructionOperands(instr *InstructionDescriptor) {
	used := uint32(0)

	for _, operand := range instr.Operands {
		mask := operand.Mask()

		if used&mask != 0 {
			panic(fmt.Errorf("operand %v of instruction %v overlaps with a previous operand", operand, instr.Mnemonic))
		}

		used |= mask
	}

	if instr.OpCode&used != 0 {
		panic(fmt.Errorf("opcode %v of instruction %v overlaps with its operands", utils.FormatUintHex(uint64(instr.OpCode), 8), instr.Mnemonic))
	}
}

// Initializes an instructions descriptor with all the given instructions
func NewInstructionsDescriptor(instructions []*InstructionDescriptor) InstructionsDescriptor {
	d := InstructionsDescriptor{
		instructions: instructions,
		byMnemonic:   make(map[string]*InstructionDescriptor, len(instructions)),
	}

	for _, instr := range instructions {
		checkInstructionOperands(instr)

		if _, duplicated := d.byMnemonic[instr.Mnemonic]; duplicated {
			panic(fmt.Errorf("instruction %v declared twice", instr.Mnemonic))
		}

		d.byMnemonic[instr.Mnemonic] = instr
	}

	return d
}

// Dumps the documentation of all instructions as one big multiline string
func (d *InstructionsDescriptor) Documentation(leftpad int) string {
	var builder strings.Builder

	builder.WriteString(strings.Repeat(" ", leftpad))
	builder.WriteString(fmt.Sprintf("total implemented instructions: %v\n", len(d.instructions)))
	builder.WriteString(strings.Repeat(" ", leftpad))
	builder.WriteString(fmt.Sprintf("instruction encoding length (bits): %v\n\n", d.InstructionBits()))

	for _, instruction := range d.instructions {
		builder.WriteString(instruction.Documentation(leftpad + 2))
		builder.WriteString("\n")
	}

	return builder.String()
}
