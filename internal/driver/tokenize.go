package driver

import (
	"addcheck/internal/lexer"
	"addcheck/internal/source"
	"addcheck/internal/token"
)

type TokenizeResult struct {
	Set    *source.InputSet
	Input  *source.Input
	Tokens []token.Token
}

// Tokenize splits one expression into its token sequence.
func Tokenize(name, text string) *TokenizeResult {
	set := source.NewInputSet()
	id := set.AddVirtual(name, text)
	input := set.Get(id)

	return &TokenizeResult{
		Set:    set,
		Input:  input,
		Tokens: lexer.Split(input),
	}
}
