package diagfmt

import (
	"encoding/json"
	"io"

	"addcheck/internal/diag"
	"addcheck/internal/source"
)

type DiagnosticOutput struct {
	Input    string       `json:"input"`
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Span     source.Span  `json:"span"`
	Col      uint32       `json:"col,omitempty"`
	Notes    []NoteOutput `json:"notes,omitempty"`
}

type NoteOutput struct {
	Message string      `json:"message"`
	Span    source.Span `json:"span"`
}

// JSON renders diagnostics as an indented JSON array.
func JSON(w io.Writer, bag *diag.Bag, set *source.InputSet, opts JSONOpts) error {
	output := make([]DiagnosticOutput, 0, bag.Len())
	for _, d := range bag.Items() {
		if opts.Max > 0 && len(output) >= opts.Max {
			break
		}
		out := DiagnosticOutput{
			Input:    set.Get(d.Primary.Input).Name,
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Span:     d.Primary,
		}
		if opts.IncludePositions {
			out.Col = set.Resolve(d.Primary).Start
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				out.Notes = append(out.Notes, NoteOutput{Message: n.Msg, Span: n.Span})
			}
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
