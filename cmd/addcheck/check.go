package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"addcheck/internal/diagfmt"
	"addcheck/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [expression ...]",
	Short: "Validate addition expressions",
	Long: `Check validates each expression against the addition grammar and
reports a diagnostic for every rejected one. Expressions come from the
arguments, from --file (one per line), or from stdin when neither is given.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().String("file", "", "read expressions from a file, one per line")
	checkCmd.Flags().Int("jobs", 0, "parallel workers (0 = number of CPUs)")
	checkCmd.Flags().Bool("cached", false, "reuse verdicts from the on-disk cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	filePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	cached, err := cmd.Flags().GetBool("cached")
	if err != nil {
		return fmt.Errorf("failed to get cached flag: %w", err)
	}

	manifest, found, err := loadToolManifest(".")
	if err != nil {
		return err
	}
	if found {
		applyManifestDefaults(cmd, manifest)
		format, _ = cmd.Flags().GetString("format")
		jobs, _ = cmd.Flags().GetInt("jobs")
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	exprs, err := collectExprs(args, filePath, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if len(exprs) == 0 {
		return fmt.Errorf("no expressions to check")
	}

	var results []*driver.CheckResult
	if cached {
		cache, err := driver.OpenDiskCache("addcheck")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		for _, expr := range exprs {
			result, err := driver.CheckCached(cache, expr.Name, expr.Text, maxDiagnostics)
			if err != nil {
				return fmt.Errorf("check %s: %w", expr.Name, err)
			}
			results = append(results, result)
		}
	} else {
		results, err = driver.CheckAll(cmd.Context(), exprs, maxDiagnostics, jobs)
		if err != nil {
			return err
		}
	}

	rejected := 0
	for _, result := range results {
		if !result.OK {
			rejected++
		}
		switch format {
		case "json":
			opts := diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}
			if err := diagfmt.JSON(cmd.OutOrStdout(), result.Bag, result.Set, opts); err != nil {
				return err
			}
		default:
			if result.OK {
				if !quiet {
					fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", result.Input.Name)
				}
				continue
			}
			opts := diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				ShowNotes: true,
			}
			diagfmt.Pretty(os.Stderr, result.Bag, result.Set, opts)
		}
	}

	if rejected > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("%d of %d expressions rejected", rejected, len(results))
	}
	return nil
}

// collectExprs gathers named expressions from the arguments, the --file
// flag and, failing both, stdin.
func collectExprs(args []string, filePath string, stdin io.Reader) ([]driver.Expr, error) {
	var exprs []driver.Expr
	for i, arg := range args {
		exprs = append(exprs, driver.Expr{Name: fmt.Sprintf("arg#%d", i+1), Text: arg})
	}

	if filePath != "" {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open %q: %w", filePath, err)
		}
		defer f.Close()
		lines, err := readExprLines(f, filePath)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, lines...)
	}

	if len(exprs) == 0 {
		lines, err := readExprLines(stdin, "stdin")
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, lines...)
	}
	return exprs, nil
}

func readExprLines(r io.Reader, name string) ([]driver.Expr, error) {
	var exprs []driver.Expr
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" {
			continue
		}
		exprs = append(exprs, driver.Expr{Name: fmt.Sprintf("%s:%d", name, line), Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return exprs, nil
}
