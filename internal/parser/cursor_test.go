package parser

import (
	"testing"

	"addcheck/internal/diag"
	"addcheck/internal/lexer"
	"addcheck/internal/source"
)

// helper function to tokenize a string
func tokenize(text string) Cursor {
	set := source.NewInputSet()
	id := set.AddVirtual("test", text)
	return NewCursor(lexer.Split(set.Get(id)))
}

func TestAdvancePrimesOntoFirstToken(t *testing.T) {
	c := tokenize("1 + 2")
	if !c.Exhausted() {
		t.Error("Expected unprimed cursor to read as exhausted")
	}
	if err := c.Advance(); err != nil {
		t.Fatalf("Expected prime to succeed, got %v", err)
	}
	if c.Current().Text != "1" {
		t.Errorf("Expected current token \"1\", got %q", c.Current().Text)
	}
}

func TestAdvanceOnEmptySequence(t *testing.T) {
	c := NewCursor(nil)
	err := c.Advance()
	if err == nil {
		t.Fatal("Expected EndOfInput advancing an empty sequence")
	}
	if err.Code != diag.RecEndOfInput {
		t.Errorf("Expected RecEndOfInput, got %v", err.Code)
	}
	if err.InRange {
		t.Error("Expected out-of-range failure position")
	}
}

func TestTryConsumeMatch(t *testing.T) {
	c := tokenize("( 1")
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}

	matched, err := c.TryConsume("(")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !matched {
		t.Fatal("Expected \"(\" to match")
	}
	if c.Current().Text != "1" {
		t.Errorf("Expected cursor on \"1\" after consume, got %q", c.Current().Text)
	}
}

func TestTryConsumeMismatchDoesNotMove(t *testing.T) {
	c := tokenize("1 + 2")
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}

	matched, err := c.TryConsume("(")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if matched {
		t.Fatal("Expected no match")
	}
	if c.Current().Text != "1" {
		t.Errorf("Expected cursor to stay on \"1\", got %q", c.Current().Text)
	}
}

func TestTryConsumePastEnd(t *testing.T) {
	c := tokenize("1")
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}
	matched, err := c.TryConsumeNumber()
	if err != nil || !matched {
		t.Fatalf("Expected number match, got matched=%v err=%v", matched, err)
	}

	// The last token is consumed: the exhaustion check fires before
	// any comparison.
	_, err = c.TryConsume("+")
	if err == nil {
		t.Fatal("Expected EndOfInput past the last token")
	}
	if err.Code != diag.RecEndOfInput {
		t.Errorf("Expected RecEndOfInput, got %v", err.Code)
	}
	if err.InRange {
		t.Error("Expected out-of-range failure position")
	}
	if err.Index != 1 {
		t.Errorf("Expected failure index 1, got %d", err.Index)
	}
}

// Number matching is bounds-checked the same way literal matching is:
// calling it with the cursor exhausted reports EndOfInput instead of
// faulting on an out-of-range read.
func TestTryConsumeNumberAtEndOfInput(t *testing.T) {
	c := tokenize("7")
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}
	if matched, err := c.TryConsumeNumber(); err != nil || !matched {
		t.Fatalf("Expected number match, got matched=%v err=%v", matched, err)
	}

	matched, err := c.TryConsumeNumber()
	if matched {
		t.Error("Expected no match past the end")
	}
	if err == nil || err.Code != diag.RecEndOfInput {
		t.Fatalf("Expected RecEndOfInput, got %v", err)
	}
}

// An empty token reads as end of input: it can only come from a run of
// spaces or a trailing space, and the grammar has nothing to match there.
func TestEmptyTokenReadsAsEndOfInput(t *testing.T) {
	c := tokenize("1 ")
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}
	if matched, err := c.TryConsumeNumber(); err != nil || !matched {
		t.Fatalf("Expected number match, got matched=%v err=%v", matched, err)
	}

	_, err := c.TryConsume("+")
	if err == nil || err.Code != diag.RecEndOfInput {
		t.Fatalf("Expected RecEndOfInput on empty token, got %v", err)
	}
	// The empty token is a real token, so the position is in range and
	// the offending text is the empty string.
	if !err.InRange {
		t.Error("Expected in-range failure position")
	}
	if err.Index != 1 || err.Token != "" {
		t.Errorf("Expected index 1 with empty token, got index %d token %q", err.Index, err.Token)
	}
}

func TestSpanOfPastEndFailure(t *testing.T) {
	c := tokenize("12")
	if err := c.Advance(); err != nil {
		t.Fatal(err)
	}
	if _, err := c.TryConsumeNumber(); err != nil {
		t.Fatal(err)
	}

	_, err := c.TryConsume("+")
	if err == nil {
		t.Fatal("Expected EndOfInput")
	}
	if err.Span.Start != 2 || err.Span.End != 2 {
		t.Errorf("Expected zero-width span at offset 2, got %d-%d", err.Span.Start, err.Span.End)
	}
}
