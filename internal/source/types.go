package source

import (
	"fmt"

	"fortio.org/safecast"
)

type (
	// InputID uniquely identifies an expression input within an InputSet.
	InputID uint32
	// InputFlags encodes metadata about an input.
	InputFlags uint8
)

const (
	// InputVirtual indicates the input was added from memory (test, args, stdin).
	InputVirtual InputFlags = 1 << iota
	// InputFromFile indicates the input is a line read from a file on disk.
	InputFromFile
)

// Input captures one expression string handed to the recognizer.
type Input struct {
	ID    InputID
	Name  string // display name: the argument itself, "stdin:3", "exprs.txt:7", ...
	Text  string
	Hash  [32]byte
	Flags InputFlags
}

// End returns the byte length of the input text, the offset just past
// the last token.
func (in *Input) End() uint32 {
	end, err := safecast.Conv[uint32](len(in.Text))
	if err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}
	return end
}

// ColRange represents a human-readable 1-based column range within an input.
type ColRange struct {
	Start uint32
	End   uint32
}
