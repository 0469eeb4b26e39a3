// Package parser implements the recursive-descent recognizer for the
// addition-expression grammar:
//
//	expression := operand operator operand
//	operand    := "(" expression ")" | number
//	operator   := "+"
//
// The recognizer only accepts or rejects; it builds no AST and computes
// no value. The grammar is LL(1) over this token set: once a branch is
// chosen by a successful consume it commits, and the first failure aborts
// the whole parse. Recursion depth is bounded by parenthesis nesting.
package parser

import (
	"addcheck/internal/diag"
	"addcheck/internal/lexer"
	"addcheck/internal/source"
	"addcheck/internal/token"
)

// recognizer threads the call-scoped cursor through the rule functions.
// All state lives here for exactly one Validate call, so concurrent and
// repeated calls cannot interfere.
type recognizer struct {
	cur Cursor
}

// Validate tokenizes the input and checks it against the grammar.
// It returns nil on acceptance and a RecognitionError on rejection.
func Validate(input *source.Input) *RecognitionError {
	r := recognizer{cur: NewCursor(lexer.Split(input))}

	// Prime the cursor onto the first token. An empty sequence fails
	// here with EndOfInput before any rule runs.
	if err := r.cur.Advance(); err != nil {
		return err
	}
	if err := r.expression(); err != nil {
		return err
	}
	if !r.cur.Exhausted() {
		return r.cur.fail(diag.RecTrailingInput, "unconsumed tokens after expression")
	}
	return nil
}

// ValidateText is a convenience wrapper for callers that hold a bare
// string rather than a source.Input.
func ValidateText(text string) *RecognitionError {
	set := source.NewInputSet()
	return Validate(set.Get(set.AddVirtual("<text>", text)))
}

// expression := operand operator operand
func (r *recognizer) expression() *RecognitionError {
	if err := r.operand(); err != nil {
		return err
	}
	if err := r.operator(); err != nil {
		return err
	}
	return r.operand()
}

// operand := "(" expression ")" | number
func (r *recognizer) operand() *RecognitionError {
	matched, err := r.cur.TryConsume(token.OpenParen)
	if err != nil {
		return err
	}
	if matched {
		if err := r.expression(); err != nil {
			return err
		}
		closed, err := r.cur.TryConsume(token.CloseParen)
		if err != nil {
			return err
		}
		if !closed {
			return r.cur.fail(diag.RecMissingCloseParen, "expected ')' to close parenthesized operand")
		}
		return nil
	}

	matched, err = r.cur.TryConsumeNumber()
	if err != nil {
		return err
	}
	if !matched {
		return r.cur.fail(diag.RecMissingOperand, "expected '(' or a number")
	}
	return nil
}

// operator := "+"
func (r *recognizer) operator() *RecognitionError {
	matched, err := r.cur.TryConsume(token.Plus)
	if err != nil {
		return err
	}
	if !matched {
		return r.cur.fail(diag.RecMissingOperator, "expected '+'")
	}
	return nil
}
