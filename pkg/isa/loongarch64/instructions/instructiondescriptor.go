package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/imms"
	"github.com/Manu343726/lacodec/pkg/utils"
)

// Contains information describing an instruction
type InstructionDescriptor struct {
	// Assembly mnemonic
	Mnemonic string
	// Instruction word with all operand bits cleared
	OpCode uint32
	// Name of the instruction format (2RI12, 1RI21, ...)
	Format string
	// Instruction operands, in assembly order
	Operands []*OperandDescriptor
	// Instruction description (for documentation and debugging)
	Description string
}

// Returns a human readable string representation of the instruction
func (d *InstructionDescriptor) String() string {
	return fmt.Sprintf("%v %v", d.Mnemonic, utils.FormatSlice(d.Operands, ", "))
}

// Returns the instruction word bits owned by the operands
func (d *InstructionDescriptor) OperandsMask() uint32 {
	var mask uint32

	for _, operand := range d.Operands {
		mask |= operand.Mask()
	}

	return mask
}

// Returns the binary representation of the instruction with the given operand values,
// or an error if the values do not fit the instruction operands
func (d *InstructionDescriptor) Encode(operands ...int64) (uint32, error) {
	if len(operands) != len(d.Operands) {
		return 0, utils.MakeError(ErrInvalidInstruction, "%v expects %v operands, got %v", d.Mnemonic, len(d.Operands), len(operands))
	}

	word := d.OpCode

	for i, operand := range d.Operands {
		bits, err := operand.Encode(operands[i])

		if err != nil {
			return 0, utils.MakeError(ErrInvalidInstruction, "operand %v (%v) of %v: %w", i, operand.Name, d.Mnemonic, err)
		}

		word |= bits
	}

	return word, nil
}

// Returns an ascii diagram of the instruction word
func (d *InstructionDescriptor) Diagram() (string, error) {
	fields := []utils.BitField{}

	for _, operand := range d.Operands {
		fields = append(fields, operand.BitFields()...)
	}

	return utils.BitDiagram(fields, imms.InstructionBits, "opcode")
}

// Returns full documentation for the instruction
func (d *InstructionDescriptor) Documentation(leftpad int) string {
	var builder strings.Builder
	leftpad_str := strings.Repeat(" ", leftpad)

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("%v (%v, opcode %v)\n\n", d, d.Format, utils.FormatUintHex(uint64(d.OpCode), 8)))

	leftpad_str += "  "

	builder.WriteString(leftpad_str)
	builder.WriteString("Description:\n\n  ")
	builder.WriteString(leftpad_str)
	builder.WriteString(d.Description)
	builder.WriteString("\n\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Encoding:\n\n")

	diagram, err := d.Diagram()
	if err != nil {
		panic(fmt.Errorf("error generating documentation for instruction %v: %w", d.Mnemonic, err))
	}

	for _, line := range strings.Split(strings.TrimRight(diagram, "\n"), "\n") {
		builder.WriteString(leftpad_str)
		builder.WriteString("  ")
		builder.WriteString(line)
		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Operands:\n\n")

	if len(d.Operands) > 0 {
		for i, operand := range d.Operands {
			builder.WriteString(leftpad_str)
			builder.WriteString(fmt.Sprintf(" [%v] %v: %v\n", i, operand, operand.Description))
		}
	} else {
		builder.WriteString(leftpad_str)
		builder.WriteString("  (none)\n")
	}

	return builder.String()
}
