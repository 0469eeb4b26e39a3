package source

import (
	"crypto/sha256"
	"fmt"

	"fortio.org/safecast"
)

// InputSet manages a collection of expression inputs and resolves spans
// back to human-readable positions.
type InputSet struct {
	inputs []Input
	index  map[string]InputID // name -> latest id
}

// NewInputSet creates a new empty InputSet.
func NewInputSet() *InputSet {
	return &InputSet{
		inputs: make([]Input, 0),
		index:  make(map[string]InputID),
	}
}

// Add stores an input, computes its hash, and returns a new InputID.
// It always creates a new InputID even if an input with the same name exists.
func (set *InputSet) Add(name, text string, flags InputFlags) InputID {
	lenInputs, err := safecast.Conv[uint32](len(set.inputs))
	if err != nil {
		panic(fmt.Errorf("len inputs overflow: %w", err))
	}
	id := InputID(lenInputs)
	set.inputs = append(set.inputs, Input{
		ID:    id,
		Name:  name,
		Text:  text,
		Hash:  sha256.Sum256([]byte(text)),
		Flags: flags,
	})
	set.index[name] = id
	return id
}

// AddVirtual adds an in-memory input (test, args, stdin).
func (set *InputSet) AddVirtual(name, text string) InputID {
	return set.Add(name, text, InputVirtual)
}

// Get returns the input for the given ID.
func (set *InputSet) Get(id InputID) *Input {
	return &set.inputs[id]
}

// GetLatest returns the latest input ID for the given name, if present.
func (set *InputSet) GetLatest(name string) (InputID, bool) {
	id, ok := set.index[name]
	return id, ok
}

// Len returns the number of stored inputs.
func (set *InputSet) Len() int {
	return len(set.inputs)
}

// Resolve converts a span into a 1-based column range within its input.
// Expressions are single lines, so there is no line component.
func (set *InputSet) Resolve(span Span) ColRange {
	return ColRange{Start: span.Start + 1, End: span.End + 1}
}
