package imm

import (
	"log/slog"

	"github.com/Manu343726/lacodec/cmd/cli"
	"github.com/Manu343726/lacodec/pkg/isa/loongarch64"
	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/imms"
	"github.com/Manu343726/lacodec/pkg/utils"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode field value",
	Short: "Encode an immediate value into instruction word bits",
	Long: `Validates a logical value against an immediate field layout and prints the instruction word
bits it occupies. Values accept 0x, 0o and 0b prefixes and an optional sign.

Flags must come before the field name: everything after it is read as an argument, so negative
values such as -1 need no escaping.`,
	Example:   "  lacodec imm encode Sk12 -1\n  lacodec imm encode --log-level debug Sd10k16 0x12345",
	Args:      cobra.ExactArgs(2),
	ValidArgs: kindNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := imms.ParseKind(args[0])

		if err != nil {
			return err
		}

		value, err := utils.ParseInt(args[1])

		if err != nil {
			return utils.MakeError(ErrInvalidArgument, "'%v' is not an integer: %w", args[1], err)
		}

		return cli.WithBackend(func(backend *loongarch64.Backend, logger *slog.Logger) error {
			layout, err := backend.EncodeImmediate(kind, value)

			if err != nil {
				return err
			}

			return printLayout(cmd.OutOrStdout(), kind.Descriptor(), value, layout)
		})
	},
}

func init() {
	// Negative values are arguments, not shorthand flags
	encodeCmd.Flags().SetInterspersed(false)
}
