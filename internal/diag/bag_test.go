package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addcheck/internal/source"
)

func TestBagCap(t *testing.T) {
	bag := NewBag(2)
	require.True(t, bag.Add(NewError(RecEndOfInput, source.Span{}, "one")))
	require.True(t, bag.Add(NewError(RecMissingOperand, source.Span{}, "two")))
	assert.False(t, bag.Add(NewError(RecMissingOperator, source.Span{}, "three")))
	assert.Equal(t, 2, bag.Len())
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(10)
	assert.False(t, bag.HasErrors())

	bag.Add(New(SevInfo, RecInfo, source.Span{}, "fyi"))
	assert.False(t, bag.HasErrors())
	assert.False(t, bag.HasWarnings())

	bag.Add(NewError(RecTrailingInput, source.Span{}, "trailing"))
	assert.True(t, bag.HasErrors())
	assert.True(t, bag.HasWarnings())
}

func TestBagSortDeterministic(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewError(RecMissingOperator, source.Span{Input: 1, Start: 4, End: 5}, "b"))
	bag.Add(NewError(RecEndOfInput, source.Span{Input: 0, Start: 8, End: 8}, "c"))
	bag.Add(NewError(RecMissingOperand, source.Span{Input: 0, Start: 0, End: 1}, "a"))

	bag.Sort()

	items := bag.Items()
	require.Len(t, items, 3)
	assert.Equal(t, RecMissingOperand, items[0].Code)
	assert.Equal(t, RecEndOfInput, items[1].Code)
	assert.Equal(t, RecMissingOperator, items[2].Code)
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	sp := source.Span{Input: 0, Start: 2, End: 3}
	bag.Add(NewError(RecMissingOperator, sp, "expected '+'"))
	bag.Add(NewError(RecMissingOperator, sp, "expected '+'"))
	bag.Add(NewError(RecMissingOperator, source.Span{Input: 0, Start: 5, End: 6}, "expected '+'"))

	bag.Dedup()
	assert.Equal(t, 2, bag.Len())
}

func TestBagReporter(t *testing.T) {
	bag := NewBag(5)
	var r Reporter = BagReporter{Bag: bag}
	r.Report(RecEndOfInput, SevError, source.Span{Start: 1, End: 2}, "eof", nil)

	require.Equal(t, 1, bag.Len())
	d := bag.Items()[0]
	assert.Equal(t, RecEndOfInput, d.Code)
	assert.Equal(t, SevError, d.Severity)
	assert.Equal(t, "eof", d.Message)
}

func TestCodeID(t *testing.T) {
	assert.Equal(t, "REC1001", RecEndOfInput.ID())
	assert.Equal(t, "E0000", UnknownCode.ID())
	assert.Contains(t, RecMissingCloseParen.String(), "missing closing parenthesis")
}
