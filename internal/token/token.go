package token

import (
	"strconv"

	"addcheck/internal/source"
)

// Literal tokens recognized by the grammar.
const (
	OpenParen  = "("
	CloseParen = ")"
	Plus       = "+"
)

// Token represents a single whitespace-delimited token with its location.
type Token struct {
	Index uint32
	Text  string
	Span  source.Span
}

// IsNumber reports whether the token parses as a signed base-10 integer.
func (t Token) IsNumber() bool {
	_, err := strconv.ParseInt(t.Text, 10, 64)
	return err == nil
}

// IsEmpty reports whether the token is an empty string. Empty tokens are
// produced by runs of spaces, a leading/trailing space, or the empty input.
func (t Token) IsEmpty() bool {
	return t.Text == ""
}

// IsPunct reports whether the token is one of the grammar's literal tokens.
func (t Token) IsPunct() bool {
	switch t.Text {
	case OpenParen, CloseParen, Plus:
		return true
	default:
		return false
	}
}

func (t Token) String() string {
	if t.IsEmpty() {
		return "<empty>"
	}
	return t.Text
}
