package parser

import (
	"strings"
	"testing"
)

func TestParse_OneRowPerLine(t *testing.T) {
	input := "Woke up at 7:30\n\nBreakfast around 8\r\n\r\nnonsense line\n"

	rows := New().Parse(input)
	if len(rows) != 3 {
		t.Fatalf("Parse() returned %d rows, want 3 (blank lines discarded)", len(rows))
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n", "\r\n\r\n", "   \n\t\n"} {
		rows := New().Parse(input)
		if len(rows) != 0 {
			t.Errorf("Parse(%q) returned %d rows, want 0", input, len(rows))
		}
	}
}

func TestParse_OrderPreserved(t *testing.T) {
	input := "First at 7:30\nSecond at 9\nThird at 1"

	rows := New().Parse(input)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	want := []string{"First", "Second", "Third"}
	for i, activity := range want {
		if rows[i].Activity != activity {
			t.Errorf("rows[%d].Activity = %q, want %q", i, rows[i].Activity, activity)
		}
	}
}

func TestParse_RangeLine(t *testing.T) {
	rows := New().Parse("Classes from 8:00 AM to 3:30 PM")
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	if rows[0].Time != "8:00 AM–3:30 PM" {
		t.Errorf("Time = %q, want %q", rows[0].Time, "8:00 AM–3:30 PM")
	}
	// Activity keeps the words before the start time, including "from".
	if rows[0].Activity != "Classes from" {
		t.Errorf("Activity = %q, want %q", rows[0].Activity, "Classes from")
	}
	if rows[0].Notes != "" {
		t.Errorf("Notes = %q, want empty", rows[0].Notes)
	}
}

func TestParse_TillRange(t *testing.T) {
	rows := New().Parse("Work 9 till 5")
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	if rows[0].Time != "9:00 AM–5:00 PM" {
		t.Errorf("Time = %q, want %q", rows[0].Time, "9:00 AM–5:00 PM")
	}
	if rows[0].Activity != "Work" {
		t.Errorf("Activity = %q, want %q", rows[0].Activity, "Work")
	}
}

// A till/to split where only one side has a time is not a range; the line
// falls back to single-time handling over the unsplit text.
func TestParse_RangeNeedsBothTimes(t *testing.T) {
	rows := New().Parse("went to the gym at 10")
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	if rows[0].Time != "10:00 AM" {
		t.Errorf("Time = %q, want %q", rows[0].Time, "10:00 AM")
	}
	if rows[0].Activity != "went to the gym" {
		t.Errorf("Activity = %q, want %q", rows[0].Activity, "went to the gym")
	}
}

// More than two segments means no range either.
func TestParse_MultipleRangeKeywords(t *testing.T) {
	rows := New().Parse("10 to 11 to 12")
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	// Single-time fallback picks the first token of the whole line.
	if rows[0].Time != "10:00 AM" {
		t.Errorf("Time = %q, want %q", rows[0].Time, "10:00 AM")
	}
}

func TestParse_BracketNote(t *testing.T) {
	rows := New().Parse("Library till 5:20 PM - tabs! [2hrs]!!!")
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	if rows[0].Notes != "2hrs" {
		t.Errorf("Notes = %q, want %q", rows[0].Notes, "2hrs")
	}
	if rows[0].Time != "5:20 PM" {
		t.Errorf("Time = %q, want %q", rows[0].Time, "5:20 PM")
	}
	// Bracket fragment, exclamation marks, and surrounding clutter are
	// gone; the interior dash survives cleanup.
	if rows[0].Activity != "Library till - tabs" {
		t.Errorf("Activity = %q, want %q", rows[0].Activity, "Library till - tabs")
	}
	if strings.Contains(rows[0].Activity, "!") {
		t.Errorf("Activity %q still contains exclamation marks", rows[0].Activity)
	}
}

// The bracket fragment is removed before time extraction, so a duration
// like [2hrs] never reads as a time.
func TestParse_BracketRemovedBeforeTimes(t *testing.T) {
	rows := New().Parse("Quick nap [2hrs]")
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	if rows[0].Time != AbsenceMarker {
		t.Errorf("Time = %q, want absence marker", rows[0].Time)
	}
	if rows[0].Activity != "Quick nap" {
		t.Errorf("Activity = %q, want %q", rows[0].Activity, "Quick nap")
	}
	if rows[0].Notes != "2hrs" {
		t.Errorf("Notes = %q, want %q", rows[0].Notes, "2hrs")
	}
}

func TestParse_FillerWordsRemoved(t *testing.T) {
	tests := []struct {
		line     string
		time     string
		activity string
	}{
		{"Went home at 6", "6:00 PM", "Went home"},
		{"Breakfast around 8", "8:00 AM", "Breakfast"},
		{"Finished homework by 10pm", "10:00 PM", "Finished homework"},
	}

	p := New()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			rows := p.Parse(tt.line)
			if len(rows) != 1 {
				t.Fatalf("got %d rows, want 1", len(rows))
			}
			if rows[0].Time != tt.time {
				t.Errorf("Time = %q, want %q", rows[0].Time, tt.time)
			}
			if rows[0].Activity != tt.activity {
				t.Errorf("Activity = %q, want %q", rows[0].Activity, tt.activity)
			}
		})
	}
}

func TestParse_LeadingListDash(t *testing.T) {
	rows := New().Parse("- Woke up at 7:30")
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	if rows[0].Time != "7:30 AM" {
		t.Errorf("Time = %q, want %q", rows[0].Time, "7:30 AM")
	}
	if rows[0].Activity != "Woke up" {
		t.Errorf("Activity = %q, want %q", rows[0].Activity, "Woke up")
	}
}

func TestParse_NoTime(t *testing.T) {
	rows := New().Parse("Random musings about the day")
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	if rows[0].Time != AbsenceMarker {
		t.Errorf("Time = %q, want absence marker", rows[0].Time)
	}
	if rows[0].Activity != "Random musings about the day" {
		t.Errorf("Activity = %q, want full line", rows[0].Activity)
	}
}

// Pure noise still yields a row; nothing is ever dropped.
func TestParse_NoiseLine(t *testing.T) {
	rows := New().Parse("!!!")
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	if rows[0].Time != AbsenceMarker {
		t.Errorf("Time = %q, want absence marker", rows[0].Time)
	}
	if rows[0].Activity != AbsenceMarker {
		t.Errorf("Activity = %q, want absence marker", rows[0].Activity)
	}
	if rows[0].Notes != "" {
		t.Errorf("Notes = %q, want empty", rows[0].Notes)
	}
}

func TestParse_WhitespaceCollapsed(t *testing.T) {
	rows := New().Parse("Morning    walk   in the park")
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	if rows[0].Activity != "Morning walk in the park" {
		t.Errorf("Activity = %q, want collapsed whitespace", rows[0].Activity)
	}
}

func TestInspect(t *testing.T) {
	input := "Classes from 8:00 AM to 3:30 PM\nLunch at 1\n???"

	reports := New().Inspect(input)
	if len(reports) != 3 {
		t.Fatalf("got %d reports, want 3", len(reports))
	}

	wantKinds := []RowKind{RowKindRange, RowKindSingle, RowKindNone}
	for i, kind := range wantKinds {
		if reports[i].Kind != kind {
			t.Errorf("reports[%d].Kind = %q, want %q", i, reports[i].Kind, kind)
		}
		if reports[i].LineNum != i+1 {
			t.Errorf("reports[%d].LineNum = %d, want %d", i, reports[i].LineNum, i+1)
		}
	}

	if reports[1].Raw != "Lunch at 1" {
		t.Errorf("Raw = %q, want original line", reports[1].Raw)
	}
}

// The same parser instance is safe to reuse; no state leaks between calls.
func TestParse_Stateless(t *testing.T) {
	p := New()

	first := p.Parse("Lunch at 1 [30min]")
	second := p.Parse("Dinner at 7pm")

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("unexpected row counts: %d, %d", len(first), len(second))
	}
	if second[0].Notes != "" {
		t.Errorf("Notes leaked across calls: %q", second[0].Notes)
	}
	if second[0].Time != "7:00 PM" {
		t.Errorf("Time = %q, want %q", second[0].Time, "7:00 PM")
	}
}
