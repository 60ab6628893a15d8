// Package parser converts freeform daily activity logs into table rows.
package parser

// Markers used when a row field has no value. Time and activity use the
// em dash; an empty notes column renders as a plain dash. The two glyphs
// are distinct on purpose.
const (
	AbsenceMarker    = "—"
	EmptyNotesMarker = "-"
)

// RangeDash joins the start and end of a time range (en dash).
const RangeDash = "–"

// Row is one entry of the output table.
type Row struct {
	// Time is a normalized single time, a "start–end" range, or the
	// absence marker.
	Time string

	// Activity is the cleaned-up description, or the absence marker.
	Activity string

	// Notes is the bracketed fragment extracted from the line, or empty.
	Notes string
}

// RowKind describes how a line's time field was derived.
type RowKind string

const (
	// RowKindRange means both sides of a till/to split yielded a time.
	RowKindRange RowKind = "range"
	// RowKindSingle means a single time token was found in the line.
	RowKindSingle RowKind = "single"
	// RowKindNone means no time token was found.
	RowKindNone RowKind = "none"
)

// LineReport pairs a built row with the raw line it came from.
// Produced by Inspect for diagnostics.
type LineReport struct {
	// LineNum is the 1-based position among non-blank lines.
	LineNum int

	// Raw is the trimmed input line.
	Raw string

	// Kind records which extraction stage produced the time field.
	Kind RowKind

	// Row is the built table row.
	Row Row
}
