package output

import (
	"strings"
	"testing"

	"github.com/daylog-io/daylog/pkg/parser"
)

func TestRenderTable_Empty(t *testing.T) {
	got := RenderTable(nil)

	want := "| Time | Activity | Notes |\n| --- | --- | --- |\n"
	if got != want {
		t.Errorf("RenderTable(nil) = %q, want %q", got, want)
	}
}

func TestRenderTable_Body(t *testing.T) {
	rows := []parser.Row{
		{Time: "7:30 AM", Activity: "Woke up", Notes: ""},
		{Time: "8:00 AM–3:30 PM", Activity: "Classes from", Notes: "long day"},
		{Time: parser.AbsenceMarker, Activity: parser.AbsenceMarker, Notes: ""},
	}

	got := RenderTable(rows)

	want := strings.Join([]string{
		"| Time | Activity | Notes |",
		"| --- | --- | --- |",
		"| 7:30 AM | Woke up | - |",
		"| 8:00 AM–3:30 PM | Classes from | long day |",
		"| — | — | - |",
		"",
	}, "\n")
	if got != want {
		t.Errorf("RenderTable() =\n%s\nwant:\n%s", got, want)
	}
}

// Empty notes render as "-", which must stay distinct from the "—"
// absence marker used for time and activity.
func TestRenderTable_MarkerGlyphs(t *testing.T) {
	rows := []parser.Row{{Time: parser.AbsenceMarker, Activity: parser.AbsenceMarker, Notes: ""}}

	got := RenderTable(rows)

	if !strings.Contains(got, "| — | — | - |") {
		t.Errorf("RenderTable() = %q, want distinct absence and empty-notes markers", got)
	}
	if parser.AbsenceMarker == parser.EmptyNotesMarker {
		t.Error("absence marker and empty-notes marker must differ")
	}
}
