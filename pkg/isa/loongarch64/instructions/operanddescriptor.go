package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/imms"
	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/registers"
	"github.com/Manu343726/lacodec/pkg/utils"
)

// Contains information about an instruction operand
type OperandDescriptor struct {
	// Type of operand
	Kind OperandKind
	// Role the operand takes in the instruction
	Role OperandRole
	// Operand name, as shown in assembly syntax descriptions (rd, rj, si12, offs26...)
	Name string
	// First bit within the instruction used to encode a register operand. Unused for immediates
	EncodingPosition int
	// Field layout of an immediate operand. Unused for registers
	Immediate imms.Kind
	// Operand description (for documentation and debugging)
	Description string
}

// Returns true if the operand is a register operand
func (o *OperandDescriptor) IsRegister() bool {
	return o.Kind == OperandKind_Register
}

// Returns true if the operand is an immediate operand
func (o *OperandDescriptor) IsImmediate() bool {
	return o.Kind == OperandKind_Immediate
}

// Returns an human readable string describing the operand
func (o *OperandDescriptor) String() string {
	if o.IsRegister() {
		return o.Name
	} else {
		return fmt.Sprintf("%v:%v", o.Name, o.Immediate)
	}
}

// Returns the instruction word bits used by the operand
func (o *OperandDescriptor) BitFields() []utils.BitField {
	if o.IsRegister() {
		return []utils.BitField{{Name: o.Name, Begin: o.EncodingPosition, Width: registers.EncodingBits}}
	}

	descriptor := o.Immediate.Descriptor()

	return utils.Map(descriptor.BitFields(), func(field utils.BitField) utils.BitField {
		field.Name = strings.Replace(field.Name, descriptor.Name, o.Name, 1)
		return field
	})
}

// Returns the instruction word bits owned by the operand
func (o *OperandDescriptor) Mask() uint32 {
	if o.IsRegister() {
		return utils.AllOnes[uint32](registers.EncodingBits) << o.EncodingPosition
	}

	return o.Immediate.Descriptor().Mask()
}

// Returns the operand value placed at its instruction word position, or an error if the
// value cannot be encoded by the operand
func (o *OperandDescriptor) Encode(value int64) (uint32, error) {
	switch o.Kind {
	case OperandKind_Immediate:
		return o.Immediate.Descriptor().Encode(value)
	case OperandKind_Register:
		register, err := registers.FromNumber(value)

		if err != nil {
			return 0, err
		}

		return register.Encode(o.EncodingPosition), nil
	}

	panic("unreachable")
}

// Parses an operand value from its assembly representation
func (o *OperandDescriptor) ParseValue(value string) (int64, error) {
	switch o.Kind {
	case OperandKind_Immediate:
		return utils.ParseInt(value)
	case OperandKind_Register:
		register, err := registers.Parse(value)
		return int64(register), err
	}

	panic("unreachable")
}

// Formats an operand value in assembly syntax
func (o *OperandDescriptor) FormatValue(value int64) string {
	switch o.Kind {
	case OperandKind_Immediate:
		return fmt.Sprint(value)
	case OperandKind_Register:
		return registers.Register(value).String()
	}

	panic("unreachable")
}

func registerOperand(name string, role OperandRole, position int) *OperandDescriptor {
	return &OperandDescriptor{
		Kind:             OperandKind_Register,
		Role:             role,
		Name:             name,
		EncodingPosition: position,
		Description:      fmt.Sprintf("%v register", role),
	}
}

// Destination register at bit 0
func rd() *OperandDescriptor {
	return registerOperand("rd", OperandRole_Destination, 0)
}

// First source register at bit 5
func rj() *OperandDescriptor {
	return registerOperand("rj", OperandRole_Source, 5)
}

// Second source register at bit 10
func rk() *OperandDescriptor {
	return registerOperand("rk", OperandRole_Source, 10)
}

// Register at bit 0 read as a source, as in branches and stores
func rdSource() *OperandDescriptor {
	return registerOperand("rd", OperandRole_Source, 0)
}

func immediate(name string, kind imms.Kind) *OperandDescriptor {
	return &OperandDescriptor{
		Kind:        OperandKind_Immediate,
		Role:        OperandRole_Source,
		Name:        name,
		Immediate:   kind,
		Description: kind.Descriptor().Description,
	}
}
