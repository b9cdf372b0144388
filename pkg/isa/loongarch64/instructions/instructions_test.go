package instructions

import (
	"strings"
	"testing"

	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/imms"
	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/registers"
	"github.com/Manu343726/lacodec/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndEncode(t *testing.T) {
	tests := []struct {
		asm      string
		expected uint32
	}{
		{asm: "andi $zero, $zero, 0", expected: 0x03400000},
		{asm: "addi.d $a0, $a0, 1", expected: 0x02c00484},
		{asm: "addi.w $a0, $zero, -1", expected: 0x02bffc04},
		{asm: "ld.d $a0, $sp, -8", expected: 0x28ffe064},
		{asm: "st.d $ra, $sp, 8", expected: 0x29c02061},
		{asm: "ldptr.d $a0, $a1, 4", expected: 0x260010a4},
		{asm: "slli.d $a0, $a0, 63", expected: 0x0041fc84},
		{asm: "jirl $zero, $ra, 0", expected: 0x4c000020},
		{asm: "beq $a0, $a1, 2", expected: 0x58000885},
		{asm: "beqz $a0, 2", expected: 0x40000880},
		{asm: "beqz $a0, -1", expected: 0x43fffc9f},
		{asm: "b 2", expected: 0x50000800},
		{asm: "bl -1", expected: 0x57ffffff},
		{asm: "lu12i.w $a0, 1", expected: 0x14000024},
		{asm: "lu12i.w $t0, -1", expected: 0x15ffffec},
		{asm: "alsl.w $a0, $a1, $a2, 1", expected: 0x000598a4},
		{asm: "bytepick.d $a0, $a1, $a2, 7", expected: 0x000f98a4},
		{asm: "csrrd $a0, 384", expected: 0x04060004},
		{asm: "lddir $a0, $a1, 1", expected: 0x064004a4},
		{asm: "movfcsr2gr $a0, 0", expected: 0x0114c804},
		{asm: "preld 0, $a0, 0", expected: 0x2ac00080},
		{asm: "break 0", expected: 0x002a0000},
		{asm: "syscall 0", expected: 0x002b0000},
		{asm: "dbar 0", expected: 0x38720000},
	}

	for _, tt := range tests {
		t.Run(tt.asm, func(t *testing.T) {
			instr, err := Parse(tt.asm)
			require.NoError(t, err)

			word := instr.Encode()
			assert.Equal(t, tt.expected, word, "%v encoded as %v", tt.asm, utils.FormatUintHex(uint64(word), 8))
			assert.Equal(t, tt.asm, instr.String())
		})
	}
}

func TestParseAcceptsAnyWhitespace(t *testing.T) {
	tests := []string{
		"addi.d\t$a0, $a0, 1",
		"  addi.d   $a0,$a0,1  ",
		"addi.d\t \t$a0,\t$a0,\t1",
	}

	for _, asm := range tests {
		t.Run(asm, func(t *testing.T) {
			instr, err := Parse(asm)
			require.NoError(t, err)

			assert.Equal(t, uint32(0x02c00484), instr.Encode())
			assert.Equal(t, "addi.d $a0, $a0, 1", instr.String())
		})
	}

	instr, err := Parse("break\t0")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x002a0000), instr.Encode())
}

func TestEncodeErrors(t *testing.T) {
	addi, err := Instructions.Instruction("addi.d")
	require.NoError(t, err)

	_, err = addi.Encode(4, 4, 2048)
	assert.ErrorIs(t, err, ErrInvalidInstruction)
	assert.ErrorIs(t, err, imms.ErrOutOfRange)

	_, err = addi.Encode(32, 4, 0)
	assert.ErrorIs(t, err, registers.ErrInvalidRegister)

	_, err = addi.Encode(4, 4)
	assert.ErrorIs(t, err, ErrInvalidInstruction)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		asm      string
		expected error
	}{
		{asm: "frobnicate $a0", expected: ErrUnknownInstruction},
		{asm: "addi.d $a0, $a0", expected: ErrInvalidInstruction},
		{asm: "addi.d $a0, $q0, 1", expected: registers.ErrUnknownRegister},
		{asm: "addi.d $a0, $a0, one", expected: ErrInvalidInstruction},
		{asm: "beqz $a0, 0x100000", expected: imms.ErrOutOfRange},
		{asm: "slli.w $a0, $a0, 32", expected: imms.ErrOutOfRange},
		{asm: "break", expected: ErrInvalidInstruction},
	}

	for _, tt := range tests {
		t.Run(tt.asm, func(t *testing.T) {
			_, err := Parse(tt.asm)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestInstructionsAreConsistent(t *testing.T) {
	for _, instr := range Instructions.AllInstructions() {
		t.Run(instr.Mnemonic, func(t *testing.T) {
			assert.Zero(t, instr.OpCode&instr.OperandsMask())

			found, err := Instructions.Instruction(strings.ToUpper(instr.Mnemonic))
			require.NoError(t, err)
			assert.Same(t, instr, found)

			zeros := make([]int64, len(instr.Operands))
			word, err := instr.Encode(zeros...)
			require.NoError(t, err)
			assert.Equal(t, instr.OpCode, word)
		})
	}

	assert.Equal(t, 4, Instructions.InstructionBytes())
}

func TestEveryFieldKindIsUsed(t *testing.T) {
	used := map[imms.Kind]bool{}

	for _, instr := range Instructions.AllInstructions() {
		for _, operand := range instr.Operands {
			if operand.IsImmediate() {
				used[operand.Immediate] = true
			}
		}
	}

	for _, kind := range imms.AllKinds() {
		assert.True(t, used[kind], "no instruction uses %v", kind)
	}
}

func TestNewInstructionsDescriptorRejectsOverlaps(t *testing.T) {
	assert.Panics(t, func() {
		NewInstructionsDescriptor([]*InstructionDescriptor{
			{Mnemonic: "bad", OpCode: 0x1, Operands: []*OperandDescriptor{rd()}},
		})
	})

	assert.Panics(t, func() {
		NewInstructionsDescriptor([]*InstructionDescriptor{
			{Mnemonic: "bad", Operands: []*OperandDescriptor{rd(), immediate("code", imms.Kind_Ud5)}},
		})
	})
}

func TestDiagram(t *testing.T) {
	beqz, err := Instructions.Instruction("beqz")
	require.NoError(t, err)

	diagram, err := beqz.Diagram()
	require.NoError(t, err)

	assert.Contains(t, diagram, "| opcode | offs21[15:0] | rj | offs21[20:16] |")
	assert.Contains(t, beqz.Documentation(0), "beqz rj, offs21:Sd5k16 (1RI21, opcode 0x40000000)")
}
