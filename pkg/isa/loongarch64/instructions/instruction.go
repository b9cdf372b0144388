package instructions

import (
	"strings"
	"unicode"

	"github.com/Manu343726/lacodec/pkg/utils"
)

// Stores an instruction with all its operand values
type Instruction struct {
	Descriptor *InstructionDescriptor
	// Register numbers and immediate logical values, in assembly order
	OperandValues []int64
}

// Returns the binary representation of the instruction
func (i *Instruction) Encode() uint32 {
	word, err := i.Descriptor.Encode(i.OperandValues...)

	if err != nil {
		panic(err)
	}

	return word
}

func (i *Instruction) String() string {
	var builder strings.Builder

	builder.WriteString(i.Descriptor.Mnemonic)

	for j, operand := range i.Descriptor.Operands {
		if j == 0 {
			builder.WriteString(" ")
		} else {
			builder.WriteString(", ")
		}

		builder.WriteString(operand.FormatValue(i.OperandValues[j]))
	}

	return builder.String()
}

// Returns a new instruction, or an error if the operand values cannot be encoded by the instruction
func NewInstruction(descriptor *InstructionDescriptor, operands []int64) (*Instruction, error) {
	if _, err := descriptor.Encode(operands...); err != nil {
		return nil, err
	}

	return &Instruction{
		Descriptor:    descriptor,
		OperandValues: operands,
	}, nil
}

// Parses an instruction in assembly syntax, as in "addi.d $a0, $a0, -1"
func Parse(line string) (*Instruction, error) {
	line = strings.TrimSpace(line)
	mnemonic, rest := line, ""

	if end := strings.IndexFunc(line, unicode.IsSpace); end >= 0 {
		mnemonic, rest = line[:end], line[end:]
	}

	descriptor, err := Instructions.Instruction(mnemonic)

	if err != nil {
		return nil, err
	}

	var operands []string

	if rest = strings.TrimSpace(rest); rest != "" {
		operands = utils.Map(strings.Split(rest, ","), strings.TrimSpace)
	}

	if len(operands) != len(descriptor.Operands) {
		return nil, utils.MakeError(ErrInvalidInstruction, "%v expects %v operands, got %v in '%v'", descriptor.Mnemonic, len(descriptor.Operands), len(operands), line)
	}

	values := make([]int64, len(operands))

	for i, operand := range descriptor.Operands {
		value, err := operand.ParseValue(operands[i])

		if err != nil {
			return nil, utils.MakeError(ErrInvalidInstruction, "operand %v (%v) of '%v': %w", i, operand.Name, line, err)
		}

		values[i] = value
	}

	return NewInstruction(descriptor, values)
}
