package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"addcheck/internal/diag"
	"addcheck/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	noteColor = color.New(color.FgBlue)
)

// Pretty renders diagnostics in a human-readable form. It walks
// bag.Items() (call bag.Sort() beforehand for deterministic order) and
// prints, per diagnostic:
//
//	<name>:<col>: <SEV> [<CODE>]: <message>
//	  <input text>
//	  <caret underline over the primary span>
//
// followed by notes in the same shape when opts.ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, set *source.InputSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, set, opts)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, set *source.InputSet, opts PrettyOpts) {
	in := set.Get(d.Primary.Input)
	cols := set.Resolve(d.Primary)

	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s:%d: %s [%s]: %s\n", in.Name, cols.Start, sev, d.Code.ID(), d.Message)

	printSnippet(w, in.Text, d.Primary, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			msg := n.Msg
			if opts.Color {
				msg = noteColor.Sprint(msg)
			}
			fmt.Fprintf(w, "  note: %s\n", msg)
			printSnippet(w, in.Text, n.Span, opts)
		}
	}
}

// printSnippet prints the input line with a caret underline over span.
func printSnippet(w io.Writer, text string, span source.Span, opts PrettyOpts) {
	line := text
	if opts.Width > 0 {
		line = runewidth.Truncate(line, int(opts.Width), "...")
	}
	fmt.Fprintf(w, "  %s\n", line)

	start := int(span.Start)
	width := int(span.End - span.Start)
	if start > len(text) {
		start = len(text)
	}
	underline := strings.Repeat(" ", start) + "^"
	if width > 1 {
		underline += strings.Repeat("~", width-1)
	}
	fmt.Fprintf(w, "  %s\n", underline)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
