// Package report exports a plain-text analysis report for a run.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chpraneeth994/data-analyzer/dataset"
	"github.com/chpraneeth994/data-analyzer/errors"
	"github.com/chpraneeth994/data-analyzer/session"
	"github.com/chpraneeth994/data-analyzer/stats"
)

const divider = "=================================================="
const subDivider = "--------------------"

// Write renders the analysis report to path. The session supplies the
// generation timestamp; pass nil to use the current time.
func Write(path string, ds *dataset.Dataset, summary stats.Summary, sess *session.Session) error {
	generated := time.Now()
	if sess != nil && !sess.StartedAt.IsZero() {
		generated = sess.StartedAt
	}

	var b strings.Builder
	b.WriteString("DATA ANALYSIS REPORT\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Generated on: %s\n", generated.Format("2006-01-02 15:04:05"))
	if sess != nil {
		fmt.Fprintf(&b, "Session: %s\n", sess.ID)
	}
	b.WriteString("\n")

	b.WriteString("DATASET OVERVIEW\n")
	b.WriteString(subDivider + "\n")
	fmt.Fprintf(&b, "Source: %s\n", ds.Source())
	fmt.Fprintf(&b, "Total records: %d\n", ds.Rows())
	fmt.Fprintf(&b, "Columns: %s\n\n", strings.Join(ds.Columns(), ", "))

	b.WriteString("BASIC STATISTICS\n")
	b.WriteString(subDivider + "\n")
	for _, col := range ds.NumericColumns() {
		cs, ok := summary[col]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", col)
		fmt.Fprintf(&b, "  Count: %d\n", cs.Count)
		fmt.Fprintf(&b, "  Mean: %.2f\n", cs.Mean)
		fmt.Fprintf(&b, "  Median: %.2f\n", cs.Median)
		fmt.Fprintf(&b, "  Std: %.2f\n", cs.Std)
		fmt.Fprintf(&b, "  Min: %.2f\n", cs.Min)
		fmt.Fprintf(&b, "  Max: %.2f\n", cs.Max)
		fmt.Fprintf(&b, "  Q1: %.2f\n", cs.Q1)
		fmt.Fprintf(&b, "  Q3: %.2f\n", cs.Q3)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return errors.Wrapf(err, "writing report to %s", path)
	}
	return nil
}
