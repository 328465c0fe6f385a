package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yTakatsukasa/verible/internal/analysis"
	"github.com/yTakatsukasa/verible/internal/lexer"
)

var (
	limitVariants int
	countOnly     bool
	emitSource    bool
)

var variantsCmd = &cobra.Command{
	Use:   "variants <file>",
	Short: "Enumerate the preprocessing variants of a source file",
	Long: `Enumerate every reachable preprocessing variant of a source file and print
the macro assumptions that select each one.

Examples:
  verible-variants variants top.sv
  verible-variants variants --emit-source top.sv
  verible-variants variants --count top.sv`,
	Args: cobra.ExactArgs(1),
	RunE: runVariants,
}

func init() {
	rootCmd.AddCommand(variantsCmd)

	variantsCmd.Flags().IntVar(&limitVariants, "limit", 0,
		"stop after this many variants (0 means no limit)")
	variantsCmd.Flags().BoolVar(&countOnly, "count", false,
		"print only the number of variants")
	variantsCmd.Flags().BoolVar(&emitSource, "emit-source", false,
		"print each variant's reconstructed source text")
}

func runVariants(cmd *cobra.Command, args []string) error {
	return analyzeFile(args[0], os.Stdout)
}

// analyzeFile lexes filename and prints its variants to w.
func analyzeFile(filename string, w io.Writer) error {
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	tokens, err := lexer.Tokenize(filename, string(source))
	if err != nil {
		return err
	}
	logger.Debug("lexed", "file", filename, "tokens", len(tokens))

	tree := analysis.NewFlowTree(tokens)
	count := 0
	err = tree.GenerateVariants(func(v *analysis.Variant) bool {
		count++
		if !countOnly {
			printVariant(w, tree, count, v)
		}
		return limitVariants == 0 || count < limitVariants
	})
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", filename, err)
	}

	if countOnly {
		fmt.Fprintf(w, "%d\n", count)
	}
	logger.Info("enumeration finished", "file", filename, "variants", count)
	return nil
}

func printVariant(w io.Writer, tree *analysis.FlowTree, n int, v *analysis.Variant) {
	fmt.Fprintf(w, "variant %d:", n)
	registry := tree.Registry()
	assumed := v.Assumed.Bits()
	if len(assumed) == 0 {
		fmt.Fprintf(w, " (no macros tested)")
	}
	for _, id := range assumed {
		state := "undefined"
		if v.Macros.Test(id) {
			state = "defined"
		}
		fmt.Fprintf(w, " %s=%s", registry.Name(id), state)
	}
	fmt.Fprintln(w)

	if emitSource {
		fmt.Fprintln(w, v.Text())
	}
}
