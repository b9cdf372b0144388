package asm

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Manu343726/lacodec/cmd/cli"
	"github.com/Manu343726/lacodec/pkg/isa/loongarch64"
	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/instructions"
	"github.com/Manu343726/lacodec/pkg/utils"
	"github.com/spf13/cobra"
)

// AsmCmd represents the asm command
var AsmCmd = &cobra.Command{
	Use:   "asm mnemonic [operands...]",
	Short: "Encode a LoongArch64 instruction",
	Long: `Encodes a single LoongArch64 instruction in assembly syntax into its 32 bit instruction word.

Operands can be given as separate arguments or as a single comma separated list. Registers accept both
numeric (r4) and ABI ($a0) names, immediates accept 0x, 0o and 0b prefixes and an optional sign.
Branch offsets are given in instruction words, as encoded.

Flags must come before the mnemonic: everything after it is read as an operand, so negative
immediates such as -1 need no escaping, but a trailing --diagram is an extra operand too.`,
	Example: "  lacodec asm addi.d '$a0, $a0, 1'\n  lacodec asm --diagram beqz a0 -1",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		line := args[0] + " " + strings.Join(args[1:], ", ")
		showDiagram, _ := cmd.Flags().GetBool("diagram")

		return cli.WithBackend(func(backend *loongarch64.Backend, logger *slog.Logger) error {
			instruction, err := instructions.Parse(line)

			if err != nil {
				return err
			}

			word := instruction.Encode()
			logger.Debug("encoded instruction", "instruction", instruction.String(), "word", utils.FormatUintHex(uint64(word), 8))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%v: %v\n", cli.ColorInstr.Sprint(instruction.String()), cli.ColorHex.Sprint(utils.FormatUintHex(uint64(word), 8)))
			fmt.Fprintf(out, "binary: %v\n", cli.ColorBinary.Sprint(utils.FormatUintBinaryGroups(uint64(word), backend.InstructionBits(), 4, "_")))

			if showDiagram {
				diagram, err := instruction.Descriptor.Diagram()

				if err != nil {
					return err
				}

				fmt.Fprint(out, "\n", diagram)
			}

			return nil
		})
	},
}

func init() {
	AsmCmd.Flags().BoolP("diagram", "d", false, "Also print the encoding diagram of the instruction")
	// Negative immediates are operands, not shorthand flags
	AsmCmd.Flags().SetInterspersed(false)
}
