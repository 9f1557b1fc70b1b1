// Package batch drives the spreadsheet-to-Markdown conversion over a folder.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/irahardianto/qa2md/internal/engine/record"
	"github.com/irahardianto/qa2md/internal/engine/report"
	"github.com/irahardianto/qa2md/internal/engine/table"
	"github.com/irahardianto/qa2md/internal/engine/workbook"
	"github.com/irahardianto/qa2md/internal/platform/logger"
)

// ErrInputNotFound is returned when the input folder does not exist.
var ErrInputNotFound = errors.New("input folder not found")

// lockFilePrefix marks the transient lock files office suites leave behind.
const lockFilePrefix = "~"

// FileError is a per-file failure. It is recorded and the batch moves on.
type FileError struct {
	File string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("processing %s: %v", e.File, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// SheetProcessor converts one table into records.
type SheetProcessor interface {
	Process(ctx context.Context, t *table.Table, fileName, sheetName string) ([]record.QARecord, error)
}

// WorkbookReader hands the sheets of one workbook to visit in order, loading
// each sheet only when it is its turn.
type WorkbookReader interface {
	Read(ctx context.Context, path string, visit func(workbook.Sheet)) error
}

// Driver runs the batch sequentially: files in name order, sheets in
// workbook order, rows in sheet order.
type Driver struct {
	Processor SheetProcessor
	Reader    WorkbookReader

	// Progress is optional.
	Progress *report.Progress
}

// NewDriver creates a Driver.
func NewDriver(processor SheetProcessor, reader WorkbookReader, progress *report.Progress) *Driver {
	return &Driver{Processor: processor, Reader: reader, Progress: progress}
}

// Run converts every eligible workbook in inputDir and writes the combined
// records to outputDir/fileName. When no record survives, nothing is written
// and the returned summary has an empty OutputPath.
func (d *Driver) Run(ctx context.Context, inputDir, outputDir, fileName string) (*report.Summary, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	files, err := Discover(inputDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating output folder: %w", err)
	}

	summary := &report.Summary{InputDir: inputDir}
	if len(files) == 0 {
		log.Warn("no eligible workbooks found", "input", inputDir, "extension", workbook.Extension)
		summary.DurationMs = time.Since(start).Milliseconds()
		d.progress().Finish()
		return summary, nil
	}

	log.Info("batch started", "input", inputDir, "files", len(files))
	d.progress().OnStart(len(files))

	var all []record.QARecord
	for _, name := range files {
		res, records := d.processFile(ctx, filepath.Join(inputDir, name), name)
		summary.Files = append(summary.Files, res)
		all = append(all, records...)
	}

	summary.Records = len(all)
	if len(all) > 0 {
		outPath := filepath.Join(outputDir, fileName)
		if err := writeRecords(outPath, all); err != nil {
			return summary, err
		}
		summary.OutputPath = outPath
		log.Info("markdown written", "path", outPath, "records", len(all))
	} else {
		log.Warn("no valid Q&A records extracted; output not written")
	}

	summary.DurationMs = time.Since(start).Milliseconds()
	d.progress().Finish()
	return summary, nil
}

// processFile never returns an error; failures and panics become FileError
// entries in the result so the remaining files still run. Records of sheets
// finished before the failure are kept.
func (d *Driver) processFile(ctx context.Context, path, name string) (res report.FileResult, records []record.QARecord) {
	log := logger.FromContext(ctx).With("file", name)
	res.Name = name
	d.progress().OnFile(name)

	fail := func(err error) {
		ferr := &FileError{File: name, Err: err}
		log.Error("file failed, continuing with next file", "error", err, "records_kept", len(records))
		d.progress().OnFileError(name, err)
		res.Error = ferr.Error()
	}

	defer func() {
		if r := recover(); r != nil {
			fail(fmt.Errorf("unexpected panic: %v", r))
		}
	}()

	err := d.Reader.Read(ctx, path, func(sh workbook.Sheet) {
		sheetStart := time.Now()
		sr := report.SheetResult{Name: sh.Name}

		if sh.Table == nil || sh.Table.Empty() {
			log.Info("empty sheet skipped", "sheet", sh.Name)
			sr.Status = report.SheetEmpty
			res.Sheets = append(res.Sheets, sr)
			d.progress().OnSheet(sr, time.Since(sheetStart))
			return
		}

		recs, err := d.Processor.Process(ctx, sh.Table, name, sh.Name)
		if err != nil {
			log.Warn("sheet skipped", "sheet", sh.Name, "reason", err)
			sr.Status = report.SheetSkipped
			sr.Reason = err.Error()
		} else {
			sr.Status = report.SheetProcessed
			sr.Records = len(recs)
			records = append(records, recs...)
		}
		res.Sheets = append(res.Sheets, sr)
		d.progress().OnSheet(sr, time.Since(sheetStart))
	})
	if err != nil {
		fail(err)
	}
	return res, records
}

func (d *Driver) progress() *report.Progress {
	if d.Progress == nil {
		d.Progress = report.NewProgress(io.Discard, true)
	}
	return d.Progress
}

// Discover lists the eligible workbook names in dir, sorted by name.
// Lock files (leading "~") and directories are ignored.
func Discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, dir)
		}
		return nil, fmt.Errorf("reading input folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInputNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input folder: %w", err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, lockFilePrefix) || !strings.HasSuffix(name, workbook.Extension) {
			continue
		}
		files = append(files, name)
	}
	return files, nil
}

func writeRecords(path string, records []record.QARecord) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := record.Write(f, records); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
