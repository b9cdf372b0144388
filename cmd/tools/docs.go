package tools

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/lacodec/pkg/isa/loongarch64"
	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/imms"
	"github.com/Manu343726/lacodec/pkg/isa/loongarch64/instructions"
	"github.com/Manu343726/lacodec/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var supportedModules = map[string]func() (string, error){
	"isa.immediates": func() (string, error) { return imms.Documentation(0), nil },
	"isa.instructions": func() (string, error) {
		return instructions.Instructions.Documentation(0), nil
	},
	"isa.settings": func() (string, error) {
		settings, err := loongarch64.LoadSettings(viper.GetViper())
		if err != nil {
			return "", err
		}
		return settings.Documentation(0), nil
	},
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show lacodec documentation",
	Long: `Dumps the documentation of the specified lacodec module.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.

Supported modules:
` + strings.Join(utils.Map(utils.SortedKeys(supportedModules), func(module string) string { return "  " + module }), "\n"),
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.ExactArgs(1)),
	ValidArgs: utils.SortedKeys(supportedModules),
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := supportedModules[args[0]]()
		if err != nil {
			return err
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), docs)
			return nil
		}

		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("error creating file: %w", err)
		}
		defer file.Close()

		_, err = fmt.Fprintln(file, docs)
		return err
	},
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
}
