package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the catch-all for unclassified findings.
	UnknownCode Code = 0

	// Recognition failures (1000-1999)
	RecInfo Code = 1000
	// RecEndOfInput: a token was required but no tokens remain.
	RecEndOfInput Code = 1001
	// RecMissingCloseParen: an opened parenthesized operand was never closed.
	RecMissingCloseParen Code = 1002
	// RecMissingOperand: neither "(" nor a valid number where an operand was expected.
	RecMissingOperand Code = 1003
	// RecMissingOperator: the "+" literal was not found.
	RecMissingOperator Code = 1004
	// RecTrailingInput: the grammar was satisfied but unconsumed tokens remain.
	RecTrailingInput Code = 1005
)

var codeDescription = map[Code]string{
	UnknownCode:          "unknown error",
	RecInfo:              "recognition info",
	RecEndOfInput:        "unexpected end of input",
	RecMissingCloseParen: "missing closing parenthesis",
	RecMissingOperand:    "missing operand",
	RecMissingOperator:   "missing operator",
	RecTrailingInput:     "trailing input after expression",
}

func (c Code) ID() string {
	if ic := int(c); ic >= 1000 && ic < 2000 {
		return fmt.Sprintf("REC%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
