package lexer

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"addcheck/internal/source"
	"addcheck/internal/token"
)

// Split tokenizes an input by cutting on single spaces. Runs of spaces
// yield empty tokens; there is no trimming or normalization. The result
// is never empty: the worst case is one token holding the whole text.
func Split(input *source.Input) []token.Token {
	parts := strings.Split(input.Text, " ")
	tokens := make([]token.Token, 0, len(parts))

	var off uint32
	for i, part := range parts {
		idx, err := safecast.Conv[uint32](i)
		if err != nil {
			panic(fmt.Errorf("token index overflow: %w", err))
		}
		length, err := safecast.Conv[uint32](len(part))
		if err != nil {
			panic(fmt.Errorf("token length overflow: %w", err))
		}
		tokens = append(tokens, token.Token{
			Index: idx,
			Text:  part,
			Span: source.Span{
				Input: input.ID,
				Start: off,
				End:   off + length,
			},
		})
		off += length + 1 // skip the delimiting space
	}
	return tokens
}
