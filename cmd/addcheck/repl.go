package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"addcheck/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Check expressions interactively",
	Long:  `Repl opens an interactive prompt that re-validates the current line on every keystroke`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("repl requires a terminal")
	}

	program := tea.NewProgram(ui.NewReplModel())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("repl failed: %w", err)
	}
	return nil
}
