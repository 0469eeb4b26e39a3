package source

import (
	"fmt"
)

// Span is a half-open byte range within one input.
type Span struct {
	Input InputID
	Start uint32 // inclusive
	End   uint32 // exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.Input, s.Start, s.End)
}

// Cover widens the span to include other. Spans from different inputs
// are not comparable; in that case the receiver wins.
func (s Span) Cover(other Span) Span {
	if s.Input != other.Input {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
