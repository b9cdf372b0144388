package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/lacodec/cmd/asm"
	"github.com/Manu343726/lacodec/cmd/cli"
	"github.com/Manu343726/lacodec/cmd/imm"
	"github.com/Manu343726/lacodec/cmd/tools"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "lacodec",
	Short: "LoongArch64 immediate operand codec",
	Long: `lacodec encodes and decodes the immediate operand fields of LoongArch64 instructions.

Every immediate field has its own layout within the 32 bit instruction word: a bit width, a signedness
and the positions its bits are scattered to. This CLI exposes the codec used by the loongarch64 backend
to validate immediates, compute their instruction word bits and assemble simple instructions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		cli.ColorError.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(tools.ToolsCmd, imm.ImmCmd, asm.AsmCmd)
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lacodec.yaml)")
	flags.String("log-level", "info", "minimum level of logged records (debug, info, warn, error)")
	flags.String("log-file", "", "also write JSON log records to this file")
	flags.Bool("has-lsx", true, "target supports the Loongson SIMD Extension")
	flags.Bool("has-lasx", true, "target supports the Loongson Advanced SIMD Extension")

	cobra.CheckErr(viper.BindPFlag("log.level", flags.Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("log.file", flags.Lookup("log-file")))
	cobra.CheckErr(viper.BindPFlag("isa.has_lsx", flags.Lookup("has-lsx")))
	cobra.CheckErr(viper.BindPFlag("isa.has_lasx", flags.Lookup("has-lasx")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".lacodec" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lacodec")
	}

	bindEnv(viper.GetViper())

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// bindEnv makes every configuration key readable from a LACODEC_ environment variable,
// with dots replaced by underscores (isa.has_lsx is read from LACODEC_ISA_HAS_LSX)
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("lacodec")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // read in environment variables that match
}
