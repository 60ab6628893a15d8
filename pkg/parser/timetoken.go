package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeToken is a parsed time expression. Before Normalize the meridiem may
// be empty and the hour may be on a 24-hour clock; after Normalize the hour
// is 1-12 and the meridiem is always set.
type TimeToken struct {
	Hour     int
	Minute   int
	Meridiem string // "AM", "PM", or "" when absent in the input
}

// Normalize converts a raw token to the canonical 12-hour form.
// The steps run in a fixed order: meridiem inference happens before the
// hour-0 substitution, so "0:15" with no meridiem becomes 12:15 PM.
func (t TimeToken) Normalize() TimeToken {
	out := t

	if out.Meridiem == "" {
		// Waking-hours heuristic: bare 7-11 reads as morning,
		// everything else as afternoon/evening.
		if out.Hour >= 7 && out.Hour <= 11 {
			out.Meridiem = "AM"
		} else {
			out.Meridiem = "PM"
		}
	}

	// 12-hour clock has no zero
	if out.Hour == 0 {
		out.Hour = 12
	}

	if out.Hour > 12 {
		out.Hour -= 12
		out.Meridiem = "PM"
	}

	return out
}

// String renders the token as "H:MM AM". Only meaningful after Normalize.
func (t TimeToken) String() string {
	return fmt.Sprintf("%d:%02d %s", t.Hour, t.Minute, t.Meridiem)
}

// TimeMatch is a time token located within a text fragment.
type TimeMatch struct {
	Token TimeToken

	// Start and End delimit the matched substring, so callers can remove
	// it from the fragment.
	Start int
	End   int
}

// timePattern matches one or two digits, an optional colon-separated
// minute pair, and optional meridiem letters.
var timePattern = regexp.MustCompile(`(?i)(\d{1,2})(?::([0-5][0-9]))?\s*(am|pm)?`)

// TimeExtractor locates time expressions in log text.
type TimeExtractor struct {
	pattern *regexp.Regexp
}

// NewTimeExtractor creates a new time extractor.
func NewTimeExtractor() *TimeExtractor {
	return &TimeExtractor{pattern: timePattern}
}

// Extract returns the first time token in the fragment, scanning left to
// right, or false if the fragment contains none. The returned token is raw:
// minute defaults to 0, meridiem may be empty.
func (e *TimeExtractor) Extract(text string) (TimeMatch, bool) {
	idx := e.pattern.FindStringSubmatchIndex(text)
	if idx == nil {
		return TimeMatch{}, false
	}

	match := TimeMatch{Start: idx[0], End: idx[1]}

	// Group 1 (hour) always participates when the pattern matches.
	hour, err := strconv.Atoi(text[idx[2]:idx[3]])
	if err != nil {
		return TimeMatch{}, false
	}
	match.Token.Hour = hour

	if idx[4] >= 0 {
		minute, err := strconv.Atoi(text[idx[4]:idx[5]])
		if err != nil {
			return TimeMatch{}, false
		}
		match.Token.Minute = minute
	}

	if idx[6] >= 0 {
		match.Token.Meridiem = strings.ToUpper(text[idx[6]:idx[7]])
	}

	return match, true
}
