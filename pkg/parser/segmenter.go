package parser

import (
	"regexp"
	"strings"
)

// Segmentation patterns, in precedence order: duration brackets are removed
// first, then range keywords are tried, then a single time, then no time.
var (
	bracketPattern      = regexp.MustCompile(`\[([^\]]*)\]`)
	rangeKeywordPattern = regexp.MustCompile(`(?i)\b(?:till|to)\b`)
	fillerWordPattern   = regexp.MustCompile(`(?i)\b(?:at|around|by)\b`)
	multiSpacePattern   = regexp.MustCompile(`\s{2,}`)
	leadingDashPattern  = regexp.MustCompile(`^\s*-\s*`)
	trailingDashPattern = regexp.MustCompile(`\s*-\s*$`)
)

// Parser builds table rows from activity log text. It holds no state
// between calls and is safe to use concurrently.
type Parser struct {
	times *TimeExtractor
}

// New creates a parser.
func New() *Parser {
	return &Parser{times: NewTimeExtractor()}
}

// Parse splits the log into trimmed non-blank lines and builds one row per
// line, in input order. It never fails: unparseable lines still produce a
// row with absence markers.
func (p *Parser) Parse(logText string) []Row {
	lines := SplitLines(logText)
	rows := make([]Row, 0, len(lines))
	for _, line := range lines {
		row, _ := p.buildRow(line)
		rows = append(rows, row)
	}
	return rows
}

// Inspect builds rows like Parse but keeps the raw line and the extraction
// stage that produced each time field, for diagnostics.
func (p *Parser) Inspect(logText string) []LineReport {
	lines := SplitLines(logText)
	reports := make([]LineReport, 0, len(lines))
	for i, line := range lines {
		row, kind := p.buildRow(line)
		reports = append(reports, LineReport{
			LineNum: i + 1,
			Raw:     line,
			Kind:    kind,
			Row:     row,
		})
	}
	return reports
}

// SplitLines normalizes line endings and returns the trimmed non-blank
// lines of the document.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func (p *Parser) buildRow(line string) (Row, RowKind) {
	notes := ""
	working := line

	// Bracketed fragments are incidental notes (durations, asides) and
	// must not take part in time or activity extraction.
	if m := bracketPattern.FindStringSubmatchIndex(working); m != nil {
		notes = strings.TrimSpace(working[m[2]:m[3]])
		working = working[:m[0]] + working[m[1]:]
	}

	// A range needs exactly two segments and a time on both sides.
	// Anything else falls through to single-time handling over the
	// unsplit working text.
	if segments := rangeKeywordPattern.Split(working, -1); len(segments) == 2 {
		start, okStart := p.times.Extract(segments[0])
		end, okEnd := p.times.Extract(segments[1])
		if okStart && okEnd {
			activity := segments[0][:start.Start] + segments[0][start.End:]
			return Row{
				Time:     start.Token.Normalize().String() + RangeDash + end.Token.Normalize().String(),
				Activity: cleanupActivity(activity),
				Notes:    notes,
			}, RowKindRange
		}
	}

	if m, ok := p.times.Extract(working); ok {
		rest := working[:m.Start] + working[m.End:]
		rest = fillerWordPattern.ReplaceAllString(rest, "")
		return Row{
			Time:     m.Token.Normalize().String(),
			Activity: cleanupActivity(rest),
			Notes:    notes,
		}, RowKindSingle
	}

	return Row{
		Time:     AbsenceMarker,
		Activity: cleanupActivity(working),
		Notes:    notes,
	}, RowKindNone
}

// cleanupActivity applies the display cleanup rules in order: list-marker
// dash, whitespace collapse, exclamation removal, trailing dash, trim.
func cleanupActivity(s string) string {
	s = leadingDashPattern.ReplaceAllString(s, "")
	s = multiSpacePattern.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "!", "")
	s = trailingDashPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return AbsenceMarker
	}
	return s
}
