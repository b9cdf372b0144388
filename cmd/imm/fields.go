package imm

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/imms"
	"github.com/Manu343726/lacodec/pkg/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List all immediate field layouts",
	Long: `Lists the immediate field layouts supported by the codec, with their width, signedness,
valid range and the instruction word bits they occupy.

Use --format yaml to dump the full layout descriptors.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		switch format {
		case "table":
			return printFieldsTable(cmd.OutOrStdout())
		case "yaml":
			return printFieldsYaml(cmd.OutOrStdout())
		default:
			return utils.MakeError(ErrInvalidFormat, "'%v' (expected table or yaml)", format)
		}
	},
}

func descriptors() []*imms.LayoutDescriptor {
	return utils.Map(imms.AllKinds(), imms.Kind.Descriptor)
}

func printFieldsTable(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "KIND\tBITS\tSIGNED\tRANGE\tWORD BITS\tSTORAGE")

	for _, d := range descriptors() {
		fmt.Fprintf(w, "%v\t%v\t%v\t[%v, %v)\t%v\tuint%v\n",
			d.Name, d.Bits, d.Signed, d.Min(), d.Max(), utils.FormatUintHex(uint64(d.Mask()), 8), d.StorageBits)
	}

	return w.Flush()
}

func printFieldsYaml(out io.Writer) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)

	if err := encoder.Encode(descriptors()); err != nil {
		return err
	}

	return encoder.Close()
}

func init() {
	fieldsCmd.Flags().StringP("format", "f", "table", "Output format (table or yaml)")
}
