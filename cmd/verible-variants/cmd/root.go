package cmd

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yTakatsukasa/verible/internal/cli"
)

var (
	// Global flags
	verbose bool
	debug   bool

	logger *charmlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "verible-variants",
	Short: "Preprocessing variant analysis for Verilog/SystemVerilog sources",
	Long: `Enumerates every distinguishable preprocessing variant of a Verilog or
SystemVerilog source file: one directive-free token sequence per combination
of macro-definedness assumptions that affects conditional compilation.

Examples:
  verible-variants variants top.sv                # list all variants
  verible-variants variants --limit 8 top.sv      # stop after 8 variants
  verible-variants tokens top.sv                  # dump the lexed token stream
  verible-variants watch top.sv                   # re-analyze on every save`,
	Version: cli.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = cli.NewLogger(verbose, debug)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug output")
}
