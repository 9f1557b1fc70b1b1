// Package report tracks batch outcomes and renders them for the CLI or as JSON.
package report

// SheetStatus is the outcome of one sheet.
type SheetStatus string

const (
	SheetProcessed SheetStatus = "processed"
	SheetEmpty     SheetStatus = "empty"
	SheetSkipped   SheetStatus = "skipped"
)

// SheetResult holds the outcome of one sheet.
type SheetResult struct {
	Name    string      `json:"name"`
	Status  SheetStatus `json:"status"`
	Records int         `json:"records"`
	Reason  string      `json:"reason,omitempty"`
}

// FileResult holds the outcome of one input file.
type FileResult struct {
	Name   string        `json:"name"`
	Error  string        `json:"error,omitempty"`
	Sheets []SheetResult `json:"sheets,omitempty"`
}

// Records sums the records extracted from the file's sheets.
func (f FileResult) Records() int {
	n := 0
	for _, s := range f.Sheets {
		n += s.Records
	}
	return n
}

// Summary is the aggregated result of one batch run.
type Summary struct {
	RunID      string       `json:"run_id,omitempty"`
	InputDir   string       `json:"input_dir"`
	OutputPath string       `json:"output_path,omitempty"`
	Records    int          `json:"records"`
	DurationMs int64        `json:"duration_ms"`
	Files      []FileResult `json:"files"`
}

// Written reports whether an output file was produced.
func (s Summary) Written() bool {
	return s.OutputPath != ""
}

// FailedFiles counts files that stopped with an error.
func (s Summary) FailedFiles() int {
	n := 0
	for _, f := range s.Files {
		if f.Error != "" {
			n++
		}
	}
	return n
}

// Formatter renders a Summary.
type Formatter interface {
	Format(summary Summary) string
}
