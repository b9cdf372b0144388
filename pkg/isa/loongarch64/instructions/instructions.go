package instructions

import (
	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/imms"
)

var Instructions InstructionsDescriptor = NewInstructionsDescriptor([]*InstructionDescriptor{
	format2RI12("slti", 0x02000000, "Sets rd to 1 if rj is less than the sign extended immediate (signed comparison), 0 otherwise"),
	format2RI12("sltui", 0x02400000, "Sets rd to 1 if rj is less than the sign extended immediate (unsigned comparison), 0 otherwise"),
	format2RI12("addi.w", 0x02800000, "Adds rj and the sign extended immediate, sign extending the 32 bit result into rd"),
	format2RI12("addi.d", 0x02c00000, "Adds rj and the sign extended immediate into rd"),
	format2RI12("lu52i.d", 0x03000000, "Replaces the 12 most significant bits of rj with the immediate and stores the result into rd"),
	format2RI12U("andi", 0x03400000, "Bitwise and of rj and the zero extended immediate into rd"),
	format2RI12U("ori", 0x03800000, "Bitwise or of rj and the zero extended immediate into rd"),
	format2RI12U("xori", 0x03c00000, "Bitwise xor of rj and the zero extended immediate into rd"),
	format2RI12("ld.b", 0x28000000, "Loads a sign extended byte from rj + si12 into rd"),
	format2RI12("ld.h", 0x28400000, "Loads a sign extended half word from rj + si12 into rd"),
	format2RI12("ld.w", 0x28800000, "Loads a sign extended word from rj + si12 into rd"),
	format2RI12("ld.d", 0x28c00000, "Loads a double word from rj + si12 into rd"),
	format2RI12("ld.bu", 0x2a000000, "Loads a zero extended byte from rj + si12 into rd"),
	format2RI12("ld.hu", 0x2a400000, "Loads a zero extended half word from rj + si12 into rd"),
	format2RI12("ld.wu", 0x2a800000, "Loads a zero extended word from rj + si12 into rd"),
	store2RI12("st.b", 0x29000000, "Stores the least significant byte of rd into rj + si12"),
	store2RI12("st.h", 0x29400000, "Stores the least significant half word of rd into rj + si12"),
	store2RI12("st.w", 0x29800000, "Stores the least significant word of rd into rj + si12"),
	store2RI12("st.d", 0x29c00000, "Stores rd into rj + si12"),
	format2RI5("slli.w", 0x00408000, "Shifts the word in rj left by ui5 bits"),
	format2RI5("srli.w", 0x00448000, "Shifts the word in rj right by ui5 bits, filling with zeros"),
	format2RI5("srai.w", 0x00488000, "Shifts the word in rj right by ui5 bits, filling with the sign bit"),
	format2RI5("rotri.w", 0x004c8000, "Rotates the word in rj right by ui5 bits"),
	format2RI6("slli.d", 0x00410000, "Shifts rj left by ui6 bits"),
	format2RI6("srli.d", 0x00450000, "Shifts rj right by ui6 bits, filling with zeros"),
	format2RI6("srai.d", 0x00490000, "Shifts rj right by ui6 bits, filling with the sign bit"),
	format2RI6("rotri.d", 0x004d0000, "Rotates rj right by ui6 bits"),
	format2RI14("ll.w", 0x20000000, "Load linked word from rj + (si14 << 2)"),
	store2RI14("sc.w", 0x21000000, "Store conditional word to rj + (si14 << 2), rd receives the success flag"),
	format2RI14("ll.d", 0x22000000, "Load linked double word from rj + (si14 << 2)"),
	store2RI14("sc.d", 0x23000000, "Store conditional double word to rj + (si14 << 2), rd receives the success flag"),
	format2RI14("ldptr.w", 0x24000000, "Loads a sign extended word from rj + (si14 << 2) into rd"),
	store2RI14("stptr.w", 0x25000000, "Stores the least significant word of rd into rj + (si14 << 2)"),
	format2RI14("ldptr.d", 0x26000000, "Loads a double word from rj + (si14 << 2) into rd"),
	store2RI14("stptr.d", 0x27000000, "Stores rd into rj + (si14 << 2)"),
	{
		Mnemonic:    "addu16i.d",
		OpCode:      0x10000000,
		Format:      "2RI16",
		Operands:    []*OperandDescriptor{rd(), rj(), immediate("si16", imms.Kind_Sk16)},
		Description: "Adds rj and the sign extended immediate shifted left by 16 bits into rd",
	},
	{
		Mnemonic:    "jirl",
		OpCode:      0x4c000000,
		Format:      "2RI16",
		Operands:    []*OperandDescriptor{rd(), rj(), immediate("offs16", imms.Kind_Sk16)},
		Description: "Jumps to rj + (offs16 << 2), storing the return address into rd",
	},
	branch2RI16("beq", 0x58000000, "Branches to pc + (offs16 << 2) if rj equals rd"),
	branch2RI16("bne", 0x5c000000, "Branches to pc + (offs16 << 2) if rj is not equal to rd"),
	branch2RI16("blt", 0x60000000, "Branches to pc + (offs16 << 2) if rj is less than rd (signed)"),
	branch2RI16("bge", 0x64000000, "Branches to pc + (offs16 << 2) if rj is greater or equal than rd (signed)"),
	branch2RI16("bltu", 0x68000000, "Branches to pc + (offs16 << 2) if rj is less than rd (unsigned)"),
	branch2RI16("bgeu", 0x6c000000, "Branches to pc + (offs16 << 2) if rj is greater or equal than rd (unsigned)"),
	branch1RI21("beqz", 0x40000000, "Branches to pc + (offs21 << 2) if rj is zero"),
	branch1RI21("bnez", 0x44000000, "Branches to pc + (offs21 << 2) if rj is not zero"),
	branchI26("b", 0x50000000, "Branches to pc + (offs26 << 2)"),
	branchI26("bl", 0x54000000, "Branches to pc + (offs26 << 2), storing the return address into ra"),
	format1RI20("lu12i.w", 0x14000000, "Loads si20 << 12 sign extended into rd"),
	format1RI20("lu32i.d", 0x16000000, "Replaces bits 51:32 of rd with si20, sign extending it"),
	format1RI20("pcaddi", 0x18000000, "Stores pc + (si20 << 2) into rd"),
	format1RI20("pcalau12i", 0x1a000000, "Stores pc + (si20 << 12) with the 12 least significant bits cleared into rd"),
	format1RI20("pcaddu12i", 0x1c000000, "Stores pc + (si20 << 12) into rd"),
	format1RI20("pcaddu18i", 0x1e000000, "Stores pc + (si20 << 18) into rd"),
	format3RS2("alsl.w", 0x00040000, "Stores (rj << (sa2 + 1)) + rk into rd, sign extending the 32 bit result. sa2 is the encoded shift amount minus one"),
	format3RS2("alsl.wu", 0x00060000, "Stores (rj << (sa2 + 1)) + rk into rd, zero extending the 32 bit result. sa2 is the encoded shift amount minus one"),
	format3RS2("bytepick.w", 0x00080000, "Concatenates the words of rk and rj and extracts a word starting at byte 4 - sa2"),
	format3RS2("alsl.d", 0x002c0000, "Stores (rj << (sa2 + 1)) + rk into rd. sa2 is the encoded shift amount minus one"),
	{
		Mnemonic:    "bytepick.d",
		OpCode:      0x000c0000,
		Format:      "3RS3",
		Operands:    []*OperandDescriptor{rd(), rj(), rk(), immediate("sa3", imms.Kind_Ua3)},
		Description: "Concatenates rk and rj and extracts a double word starting at byte 8 - sa3",
	},
	{
		Mnemonic:    "csrrd",
		OpCode:      0x04000000,
		Format:      "1RCSR",
		Operands:    []*OperandDescriptor{rd(), immediate("csr", imms.Kind_Uk14)},
		Description: "Reads the control and status register csr into rd",
	},
	{
		Mnemonic:    "csrwr",
		OpCode:      0x04000020,
		Format:      "1RCSR",
		Operands:    []*OperandDescriptor{rd(), immediate("csr", imms.Kind_Uk14)},
		Description: "Swaps the value of rd with the control and status register csr",
	},
	{
		Mnemonic:    "lddir",
		OpCode:      0x06400000,
		Format:      "2RI8",
		Operands:    []*OperandDescriptor{rd(), rj(), immediate("level", imms.Kind_Uk8)},
		Description: "Loads the page directory entry of the given level pointed by rj into rd",
	},
	{
		Mnemonic:    "movfcsr2gr",
		OpCode:      0x0114c800,
		Format:      "1RFCSR",
		Operands:    []*OperandDescriptor{rd(), immediate("fcsr", imms.Kind_Uj5)},
		Description: "Copies the floating point control and status register fcsr into rd",
	},
	{
		Mnemonic:    "preld",
		OpCode:      0x2ac00000,
		Format:      "HINT2RI12",
		Operands:    []*OperandDescriptor{immediate("hint", imms.Kind_Ud5), rj(), immediate("si12", imms.Kind_Sk12)},
		Description: "Prefetches the cache line at rj + si12 following the given hint",
	},
	code15("break", 0x002a0000, "Raises a breakpoint exception"),
	code15("syscall", 0x002b0000, "Raises a system call exception"),
	code15("dbar", 0x38720000, "Data barrier"),
	code15("ibar", 0x38728000, "Instruction barrier"),
})

func format2RI12(mnemonic string, opcode uint32, description string) *InstructionDescriptor {
	return &InstructionDescriptor{
		Mnemonic:    mnemonic,
		OpCode:      opcode,
		Format:      "2RI12",
		Operands:    []*OperandDescriptor{rd(), rj(), immediate("si12", imms.Kind_Sk12)},
		Description: description,
	}
}

func store2RI12(mnemonic string, opcode uint32, description string) *InstructionDescriptor {
	instr := format2RI12(mnemonic, opcode, description)
	instr.Operands[0] = rdSource()
	return instr
}

func format2RI12U(mnemonic string, opcode uint32, description string) *InstructionDescriptor {
	return &InstructionDescriptor{
		Mnemonic:    mnemonic,
		OpCode:      opcode,
		Format:      "2RI12",
		Operands:    []*OperandDescriptor{rd(), rj(), immediate("ui12", imms.Kind_Uk12)},
		Description: description,
	}
}

func format2RI5(mnemonic string, opcode uint32, description string) *InstructionDescriptor {
	return &InstructionDescriptor{
		Mnemonic:    mnemonic,
		OpCode:      opcode,
		Format:      "2RI5",
		Operands:    []*OperandDescriptor{rd(), rj(), immediate("ui5", imms.Kind_Uk5)},
		Description: description,
	}
}

func format2RI6(mnemonic string, opcode uint32, description string) *InstructionDescriptor {
	return &InstructionDescriptor{
		Mnemonic:    mnemonic,
		OpCode:      opcode,
		Format:      "2RI6",
		Operands:    []*OperandDescriptor{rd(), rj(), immediate("ui6", imms.Kind_Uk6)},
		Description: description,
	}
}

func format2RI14(mnemonic string, opcode uint32, description string) *InstructionDescriptor {
	return &InstructionDescriptor{
		Mnemonic:    mnemonic,
		OpCode:      opcode,
		Format:      "2RI14",
		Operands:    []*OperandDescriptor{rd(), rj(), immediate("si14", imms.Kind_Sk14)},
		Description: description,
	}
}

func store2RI14(mnemonic string, opcode uint32, description string) *InstructionDescriptor {
	instr := format2RI14(mnemonic, opcode, description)
	instr.Operands[0] = rdSource()
	return instr
}

// Two register branches take rj first in assembly, even if it is encoded after rd
func branch2RI16(mnemonic string, opcode uint32, description string) *InstructionDescriptor {
	return &InstructionDescriptor{
		Mnemonic:    mnemonic,
		OpCode:      opcode,
		Format:      "2RI16",
		Operands:    []*OperandDescriptor{rj(), rdSource(), immediate("offs16", imms.Kind_Sk16)},
		Description: description,
	}
}

func branch1RI21(mnemonic string, opcode uint32, description string) *InstructionDescriptor {
	return &InstructionDescriptor{
		Mnemonic:    mnemonic,
		OpCode:      opcode,
		Format:      "1RI21",
		Operands:    []*OperandDescriptor{rj(), immediate("offs21", imms.Kind_Sd5k16)},
		Description: description,
	}
}

func branchI26(mnemonic string, opcode uint32, description string) *InstructionDescriptor {
	return &InstructionDescriptor{
		Mnemonic:    mnemonic,
		OpCode:      opcode,
		Format:      "I26",
		Operands:    []*OperandDescriptor{immediate("offs26", imms.Kind_Sd10k16)},
		Description: description,
	}
}

func format1RI20(mnemonic string, opcode uint32, description string) *InstructionDescriptor {
	return &InstructionDescriptor{
		Mnemonic:    mnemonic,
		OpCode:      opcode,
		Format:      "1RI20",
		Operands:    []*OperandDescriptor{rd(), immediate("si20", imms.Kind_Sj20)},
		Description: description,
	}
}

func format3RS2(mnemonic string, opcode uint32, description string) *InstructionDescriptor {
	return &InstructionDescriptor{
		Mnemonic:    mnemonic,
		OpCode:      opcode,
		Format:      "3RS2",
		Operands:    []*OperandDescriptor{rd(), rj(), rk(), immediate("sa2", imms.Kind_Ua2)},
		Description: description,
	}
}

func code15(mnemonic string, opcode uint32, description string) *InstructionDescriptor {
	return &InstructionDescriptor{
		Mnemonic:    mnemonic,
		OpCode:      opcode,
		Format:      "CODE15",
		Operands:    []*OperandDescriptor{immediate("code", imms.Kind_Ud15)},
		Description: description,
	}
}
