package parser

import (
	"fmt"

	"fortio.org/safecast"

	"addcheck/internal/diag"
	"addcheck/internal/source"
	"addcheck/internal/token"
)

// Cursor is the single piece of mutable state during one recognition call.
// It starts unprimed; the first Advance loads the first token. An empty
// current token reads as end of input: empty tokens only arise from runs
// of spaces, a trailing space, or the empty input, and the grammar has
// nothing to match against them.
type Cursor struct {
	tokens []token.Token
	cur    token.Token // zero value until primed
	next   int         // index of the next token to load
}

// NewCursor creates an unprimed cursor over the token sequence.
func NewCursor(tokens []token.Token) Cursor {
	return Cursor{tokens: tokens, next: 0}
}

// Advance loads the next token into the cursor. The bounds check happens
// before moving: advancing a cursor that has nothing left to step onto is
// itself an EndOfInput failure, not a silent no-op.
func (c *Cursor) Advance() *RecognitionError {
	if c.next >= len(c.tokens) {
		return c.endOfInput()
	}
	c.cur = c.tokens[c.next]
	c.next++
	return nil
}

// TryConsume consumes the current token if it equals lit. The exhaustion
// check runs before the comparison; a false result leaves the cursor in
// place.
func (c *Cursor) TryConsume(lit string) (bool, *RecognitionError) {
	if c.Exhausted() {
		return false, c.endOfInput()
	}
	if c.cur.Text == lit {
		c.bump()
		return true, nil
	}
	return false, nil
}

// TryConsumeNumber consumes the current token if it parses as a signed
// base-10 integer. Exhaustion is checked the same way TryConsume checks
// it, so a grammar bug that matches a number past the end surfaces as
// EndOfInput rather than an index fault.
func (c *Cursor) TryConsumeNumber() (bool, *RecognitionError) {
	if c.Exhausted() {
		return false, c.endOfInput()
	}
	if c.cur.IsNumber() {
		c.bump()
		return true, nil
	}
	return false, nil
}

// Exhausted reports whether the cursor has nothing left to match.
func (c *Cursor) Exhausted() bool {
	return c.cur.IsEmpty()
}

// Current returns the token under the cursor.
func (c *Cursor) Current() token.Token {
	return c.cur
}

// bump steps past the current token. Unlike Advance it may step off the
// end of the sequence: consuming the final token is legal, it just leaves
// the cursor exhausted.
func (c *Cursor) bump() {
	if c.next < len(c.tokens) {
		c.cur = c.tokens[c.next]
		c.next++
		return
	}
	c.cur = token.Token{
		Index: c.pastEndIndex(),
		Text:  "",
		Span:  c.endSpan(),
	}
	c.next++
}

func (c *Cursor) pastEndIndex() uint32 {
	idx, err := safecast.Conv[uint32](len(c.tokens))
	if err != nil {
		panic(fmt.Errorf("token count overflow: %w", err))
	}
	return idx
}

// endSpan is the zero-width span just past the last token.
func (c *Cursor) endSpan() source.Span {
	if len(c.tokens) == 0 {
		return source.Span{}
	}
	last := c.tokens[len(c.tokens)-1].Span
	return source.Span{Input: last.Input, Start: last.End, End: last.End}
}

// inRange reports whether the current token exists in the sequence, as
// opposed to the synthetic past-the-end token.
func (c *Cursor) inRange() bool {
	return int(c.cur.Index) < len(c.tokens)
}

func (c *Cursor) endOfInput() *RecognitionError {
	return c.fail(diag.RecEndOfInput, "expected more input")
}
