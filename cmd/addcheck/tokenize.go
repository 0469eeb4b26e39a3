package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"addcheck/internal/diagfmt"
	"addcheck/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] expression",
	Short: "Show the token stream of an expression",
	Long:  `Tokenize splits an expression on single spaces and prints each token with its class and column range`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	// Multiple args are joined back with single spaces so an unquoted
	// expression still tokenizes the way a quoted one would.
	text := strings.Join(args, " ")

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result := driver.Tokenize("arg#1", text)

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.Set)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
