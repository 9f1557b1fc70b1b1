package report

import (
	"fmt"
	"io"
	"time"
)

// Progress renders live batch status to an io.Writer (typically stderr).
// Output is suppressed in JSON mode to avoid corrupting machine-readable output.
type Progress struct {
	w          io.Writer
	suppressed bool
	records    int
	failed     int
}

// NewProgress creates a new progress tracker writing to w.
// If suppressed is true, no output is produced.
func NewProgress(w io.Writer, suppressed bool) *Progress {
	return &Progress{w: w, suppressed: suppressed}
}

// OnStart is called once the eligible files are known.
func (p *Progress) OnStart(files int) {
	if p.suppressed {
		return
	}
	fmt.Fprintf(p.w, "⏳ Processing %d workbook(s)...\n", files)
}

// OnFile is called before a file is opened.
func (p *Progress) OnFile(name string) {
	if p.suppressed {
		return
	}
	fmt.Fprintf(p.w, "📂 %s\n", name)
}

// OnSheet is called when a sheet has an outcome.
func (p *Progress) OnSheet(s SheetResult, dur time.Duration) {
	p.records += s.Records
	if p.suppressed {
		return
	}

	switch s.Status {
	case SheetProcessed:
		fmt.Fprintf(p.w, "  ✅ %s  %d record(s)  %s\n", s.Name, s.Records, formatDuration(dur))
	case SheetEmpty:
		fmt.Fprintf(p.w, "  ⏭️ %s  empty\n", s.Name)
	default:
		fmt.Fprintf(p.w, "  ⚠️ %s  skipped: %s  %s\n", s.Name, s.Reason, formatDuration(dur))
	}
}

// OnFileError is called when a file stops with an error.
func (p *Progress) OnFileError(name string, err error) {
	p.failed++
	if p.suppressed {
		return
	}
	fmt.Fprintf(p.w, "  💥 %s: %v\n", name, err)
}

// Finish prints a one-line tally.
func (p *Progress) Finish() {
	if p.suppressed {
		return
	}
	fmt.Fprintf(p.w, "\n")
	if p.failed == 0 {
		fmt.Fprintf(p.w, "Extracted %d record(s)\n", p.records)
	} else {
		fmt.Fprintf(p.w, "Extracted %d record(s), %d file(s) failed\n", p.records, p.failed)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
