package imm

import (
	"fmt"
	"io"
	"strings"

	"github.com/Manu343726/lacodec/cmd/cli"
	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/imms"
	"github.com/Manu343726/lacodec/pkg/utils"
	"github.com/spf13/cobra"
)

// ImmCmd represents the imm command
var ImmCmd = &cobra.Command{
	Use:   "imm",
	Short: "Encode and decode immediate operand fields",
	Long: `Encode and decode the immediate operand fields of LoongArch64 instructions.

Supported fields:
` + strings.Join(utils.Map(imms.AllKinds(), func(kind imms.Kind) string { return "  " + kind.Descriptor().String() }), "\n"),
}

func kindNames() []string {
	return utils.Map(imms.AllKinds(), imms.Kind.String)
}

// Prints the layout of an immediate value: the instruction word bits in hex and binary and the field diagram
func printLayout(out io.Writer, descriptor *imms.LayoutDescriptor, value int64, layout uint32) error {
	fmt.Fprintf(out, "%v = %v\n", cli.ColorName.Sprint(descriptor.Name), cli.ColorValue.Sprint(descriptor.Format(value)))
	fmt.Fprintf(out, "layout: %v\n", cli.ColorHex.Sprint(utils.FormatUintHex(uint64(layout), 8)))
	fmt.Fprintf(out, "binary: %v\n", cli.ColorBinary.Sprint(utils.FormatUintBinaryGroups(uint64(layout), imms.InstructionBits, 4, "_")))
	fmt.Fprintf(out, "mask:   %v\n\n", cli.ColorHex.Sprint(utils.FormatUintHex(uint64(descriptor.Mask()), 8)))

	diagram, err := utils.BitDiagram(descriptor.BitFields(), imms.InstructionBits, "")

	if err != nil {
		return err
	}

	fmt.Fprint(out, diagram)
	return nil
}

func init() {
	ImmCmd.AddCommand(fieldsCmd, encodeCmd, decodeCmd)
}
