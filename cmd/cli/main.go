// daylog - Daily Activity Log Formatter
//
// daylog turns a freeform daily activity log into a normalized
// three-column Markdown table (Time, Activity, Notes).
package main

import (
	"os"

	"github.com/daylog-io/daylog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
