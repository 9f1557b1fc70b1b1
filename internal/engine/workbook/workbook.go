// Package workbook reads .xlsx files into tables, one per sheet.
package workbook

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/irahardianto/qa2md/internal/engine/table"
	"github.com/irahardianto/qa2md/internal/platform/logger"
	"github.com/xuri/excelize/v2"
)

// Extension is the file suffix of readable workbooks.
const Extension = ".xlsx"

// Sheet is one named page of a workbook. The first row is the header.
type Sheet struct {
	Name  string
	Table *table.Table
}

// Reader opens workbooks from disk.
type Reader struct{}

// NewReader creates a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read opens the workbook at path and hands its sheets to visit one at a
// time, in workbook order. Each sheet is loaded just before its visit, so a
// sheet that cannot be read stops the walk after the earlier sheets were
// already visited.
func (r *Reader) Read(ctx context.Context, path string, visit func(Sheet)) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	names := f.GetSheetList()
	logger.FromContext(ctx).Debug("workbook opened", "path", path, "sheets", len(names))

	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return fmt.Errorf("reading sheet %q: %w", name, err)
		}
		visit(Sheet{Name: name, Table: FromRows(rows)})
	}
	return nil
}

// FromRows builds a table from raw rows whose first row is the header.
// Rows longer than the header get extra "Unnamed: N" columns, blank header
// cells are named the same way and repeated names get ".1", ".2" suffixes.
// Data rows without any value are dropped.
func FromRows(rows [][]string) *table.Table {
	if len(rows) == 0 {
		return table.New(nil, nil)
	}

	data := make([][]any, 0, len(rows)-1)
	width := len(rows[0])
	for _, r := range rows[1:] {
		row := make([]any, len(r))
		blank := true
		for i, v := range r {
			if v == "" {
				continue
			}
			row[i] = v
			blank = false
		}
		if blank {
			continue
		}
		data = append(data, row)
		width = max(width, len(r))
	}

	columns := headerNames(rows[0], width)
	return table.New(columns, data)
}

func headerNames(header []string, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)

	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}

		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = name + "." + strconv.Itoa(n+1)
		} else {
			seen[name] = 0
		}
		names[i] = name
	}
	return names
}
