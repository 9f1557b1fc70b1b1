package report

import (
	"fmt"
	"strings"
)

// ANSI color codes.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiDim    = "\033[2m"
)

// CLIFormatter outputs a Summary as a human-readable report.
type CLIFormatter struct {
	Color bool
}

// NewCLIFormatter creates a new CLIFormatter.
func NewCLIFormatter(color bool) *CLIFormatter {
	return &CLIFormatter{Color: color}
}

// Format returns a formatted CLI report.
func (f *CLIFormatter) Format(s Summary) string {
	var b strings.Builder

	for _, file := range s.Files {
		icon := f.colorize("📂", ansiBold)
		if file.Error != "" {
			icon = f.colorize("💥", ansiRed)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", icon, f.colorize(file.Name, ansiBold)))

		if file.Error != "" {
			b.WriteString(fmt.Sprintf("    %s\n", f.colorize(file.Error, ansiRed)))
		}
		for _, sh := range file.Sheets {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", f.sheetIcon(sh), sh.Name, f.sheetDetail(sh)))
		}
	}

	b.WriteString("\n")
	if s.Written() {
		b.WriteString(fmt.Sprintf("%s %d Q&A record(s) written to %s in %dms\n",
			f.colorize("✨", ansiGreen), s.Records, s.OutputPath, s.DurationMs))
	} else {
		b.WriteString(fmt.Sprintf("%s no valid Q&A records found in %s\n",
			f.colorize("🤷", ansiYellow), s.InputDir))
	}
	if n := s.FailedFiles(); n > 0 {
		b.WriteString(f.colorize(fmt.Sprintf("%d file(s) failed\n", n), ansiRed))
	}

	return b.String()
}

func (f *CLIFormatter) sheetIcon(s SheetResult) string {
	switch s.Status {
	case SheetProcessed:
		return f.colorize("✅", ansiGreen)
	case SheetEmpty:
		return "⏭️"
	default:
		return f.colorize("⚠️", ansiYellow)
	}
}

func (f *CLIFormatter) sheetDetail(s SheetResult) string {
	switch s.Status {
	case SheetProcessed:
		return f.colorize(fmt.Sprintf("%d record(s)", s.Records), ansiDim)
	case SheetEmpty:
		return f.colorize("empty", ansiDim)
	default:
		return f.colorize("skipped: "+s.Reason, ansiDim)
	}
}

func (f *CLIFormatter) colorize(s, code string) string {
	if !f.Color {
		return s
	}
	return code + s + ansiReset
}
