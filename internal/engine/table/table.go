// Package table holds one sheet's worth of tabular data.
package table

import (
	"strings"

	"github.com/irahardianto/qa2md/internal/engine/cell"
)

// Table is an ordered set of named columns and rows. Cells are arbitrary
// values; nil marks a missing cell.
type Table struct {
	Columns []string
	Rows    [][]any
}

// New returns a table whose rows are padded or cut to the column count.
func New(columns []string, rows [][]any) *Table {
	t := &Table{Columns: columns, Rows: make([][]any, 0, len(rows))}
	for _, r := range rows {
		row := make([]any, len(columns))
		copy(row, r)
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return t.Len() == 0
}

// ColumnIndex returns the position of name or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether name is one of the column names.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Column returns the values of the named column in row order, or nil.
func (t *Table) Column(name string) []any {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]any, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r[idx]
	}
	return out
}

// FillMissing returns a copy of t with every nil cell set to "".
func (t *Table) FillMissing() *Table {
	out := &Table{Columns: t.Columns, Rows: make([][]any, len(t.Rows))}
	for i, r := range t.Rows {
		row := make([]any, len(r))
		for j, v := range r {
			if v == nil {
				v = ""
			}
			row[j] = v
		}
		out.Rows[i] = row
	}
	return out
}

// Head returns a table sharing the first n rows.
func (t *Table) Head(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return &Table{Columns: t.Columns, Rows: t.Rows[:n]}
}

// Markdown renders the table as a pipe table for prompts.
func (t *Table) Markdown() string {
	var b strings.Builder

	writeRow := func(values []string) {
		b.WriteString("|")
		for _, v := range values {
			b.WriteString(" ")
			b.WriteString(v)
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	header := make([]string, len(t.Columns))
	sep := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = inlineCell(c)
		sep[i] = "---"
	}
	writeRow(header)
	writeRow(sep)

	for _, r := range t.Rows {
		vals := make([]string, len(r))
		for i, v := range r {
			vals[i] = inlineCell(v)
		}
		writeRow(vals)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func inlineCell(v any) string {
	s := cell.Text(v)
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
