package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	Width     uint8 // maximum rendered line width, 0 = unlimited
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add column positions
	IncludeNotes     bool
	Max              int // truncate the output, not the Bag
}
