package output

import (
	"fmt"
	"strings"

	"github.com/daylog-io/daylog/pkg/parser"
)

// RenderTable serializes rows into a three-column Markdown table. Cells get
// single-space padding and no width alignment. Empty notes render as "-",
// which is not the "—" absence marker used for time and activity.
func RenderTable(rows []parser.Row) string {
	var b strings.Builder

	b.WriteString("| Time | Activity | Notes |\n")
	b.WriteString("| --- | --- | --- |\n")

	for _, row := range rows {
		notes := row.Notes
		if notes == "" {
			notes = parser.EmptyNotesMarker
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", row.Time, row.Activity, notes)
	}

	return b.String()
}
