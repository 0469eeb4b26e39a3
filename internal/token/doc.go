// Package token defines the whitespace-delimited token model for the
// addition-expression recognizer.
// Invariants:
//   - Token.Text is a substring of the original input (no copies).
//   - Token.Span matches Text exactly (Start..End byte offsets).
//   - Token.Index is the ordinal position in the split sequence.
//   - Tokens are matched by literal text; there is no Kind classification.
//     The grammar only distinguishes "(", ")", "+" and integer literals,
//     and that distinction lives in the recognizer, not here.
package token
