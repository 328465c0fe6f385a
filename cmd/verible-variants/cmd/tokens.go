package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yTakatsukasa/verible/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the preprocessor-level token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	filename := args[0]

	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	tokens, err := lexer.Tokenize(filename, string(source))
	if err != nil {
		return err
	}

	for _, tok := range tokens {
		fmt.Printf("%s\t%s\t%q\n", tok.Pos, tok.Type, tok.Literal)
	}
	return nil
}
