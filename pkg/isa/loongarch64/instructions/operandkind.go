package instructions

// Represents the kind of operand (Register, immediate, etc)
type OperandKind uint

const (
	OperandKind_Immediate OperandKind = iota
	OperandKind_Register
)

func (o OperandKind) String() string {
	switch o {
	case OperandKind_Immediate:
		return "Immediate"
	case OperandKind_Register:
		return "Register"
	}

	panic("unreachable")
}

// Represents the role an operand has within an instruction
type OperandRole uint

const (
	OperandRole_Source OperandRole = iota
	OperandRole_Destination
)

func (o OperandRole) String() string {
	switch o {
	case OperandRole_Source:
		return "Source"
	case OperandRole_Destination:
		return "Destination"
	}

	panic("unreachable")
}
