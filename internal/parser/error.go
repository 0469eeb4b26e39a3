package parser

import (
	"fmt"

	"addcheck/internal/diag"
	"addcheck/internal/source"
)

// RecognitionError describes why an input was rejected. It carries the
// failure reason, the token index where recognition stopped, and the
// offending token text when the index points at a real token. Rejection
// is an expected outcome, so this is a returned value, never a panic.
type RecognitionError struct {
	Code    diag.Code
	Reason  string
	Index   uint32
	Token   string // valid only when InRange
	InRange bool
	Span    source.Span
}

func (e *RecognitionError) Error() string {
	if e.InRange {
		return fmt.Sprintf("%s at token %d (%q)", e.Reason, e.Index, e.Token)
	}
	return fmt.Sprintf("%s at token %d", e.Reason, e.Index)
}

// Diagnostic converts the error into the diagnostic record rendered by
// the CLI layers.
func (e *RecognitionError) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Span, e.Error())
}

// fail builds a RecognitionError at the cursor's current position.
func (c *Cursor) fail(code diag.Code, reason string) *RecognitionError {
	return &RecognitionError{
		Code:    code,
		Reason:  reason,
		Index:   c.cur.Index,
		Token:   c.cur.Text,
		InRange: c.inRange(),
		Span:    c.cur.Span,
	}
}
