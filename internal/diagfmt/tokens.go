package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"addcheck/internal/source"
	"addcheck/internal/token"
)

type TokenOutput struct {
	Index  uint32      `json:"index"`
	Text   string      `json:"text"`
	Span   source.Span `json:"span"`
	Number bool        `json:"number,omitempty"`
	Empty  bool        `json:"empty,omitempty"`
}

// FormatTokensPretty prints one line per token with its classification
// and column range.
func FormatTokensPretty(w io.Writer, tokens []token.Token, set *source.InputSet) error {
	for _, tok := range tokens {
		cols := set.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-10s", tok.Index, tok.String())

		switch {
		case tok.IsEmpty():
			fmt.Fprint(w, " empty")
		case tok.IsNumber():
			fmt.Fprint(w, " number")
		case tok.IsPunct():
			fmt.Fprint(w, " punct")
		default:
			fmt.Fprint(w, " other")
		}

		fmt.Fprintf(w, " at %d-%d\n", cols.Start, cols.End)
	}
	return nil
}

// FormatTokensJSON prints the token sequence as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Index:  tok.Index,
			Text:   tok.Text,
			Span:   tok.Span,
			Number: tok.IsNumber(),
			Empty:  tok.IsEmpty(),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
