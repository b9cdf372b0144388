package imm

import (
	"log/slog"

	"github.com/Manu343726/lacodec/cmd/cli"
	"github.com/Manu343726/lacodec/pkg/isa/loongarch64"
	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/imms"
	"github.com/Manu343726/lacodec/pkg/utils"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode field word",
	Short: "Decode an immediate value from an instruction word",
	Long: `Extracts the bits of an immediate field from a 32 bit instruction word and prints its logical value.
Bits of the word owned by other fields (opcode, registers) are ignored.`,
	Example:   "  lacodec imm decode Sd5k16 0x43fffc9f",
	Args:      cobra.ExactArgs(2),
	ValidArgs: kindNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := imms.ParseKind(args[0])

		if err != nil {
			return err
		}

		word, err := utils.ParseUint32(args[1])

		if err != nil {
			return utils.MakeError(ErrInvalidArgument, "'%v' is not a 32 bit instruction word: %w", args[1], err)
		}

		return cli.WithBackend(func(backend *loongarch64.Backend, logger *slog.Logger) error {
			value := backend.DecodeImmediate(kind, word)
			logger.Debug("decoded immediate", "field", kind.String(), "word", utils.FormatUintHex(uint64(word), 8), "value", value)

			return printLayout(cmd.OutOrStdout(), kind.Descriptor(), value, word&kind.Descriptor().Mask())
		})
	},
}
