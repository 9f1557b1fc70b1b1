package docx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/irahardianto/qa2md/internal/platform/logger"
)

// Extension is the file suffix of convertible documents.
const Extension = ".docx"

// lockFilePrefix marks Word's owner/lock files.
const lockFilePrefix = "~$"

// ErrInputNotFound is returned when the input folder does not exist.
var ErrInputNotFound = errors.New("input folder not found")

// ParagraphReader returns the body paragraphs of one document.
type ParagraphReader interface {
	Read(ctx context.Context, path string) ([]Paragraph, error)
}

// Result describes one conversion run.
type Result struct {
	Files      []string `json:"files"`
	Failed     []string `json:"failed,omitempty"`
	Blocks     int      `json:"blocks"`
	OutputPath string   `json:"output_path,omitempty"`
}

// Converter reflows every document in a folder into one Markdown file.
type Converter struct {
	Reader ParagraphReader
}

// NewConverter creates a Converter.
func NewConverter(reader ParagraphReader) *Converter {
	return &Converter{Reader: reader}
}

// Run converts the documents in inputDir and writes outputDir/fileName.
// Unreadable documents are logged and skipped. Nothing is written when no
// block was produced.
func (c *Converter) Run(ctx context.Context, inputDir, outputDir, fileName string) (*Result, error) {
	log := logger.FromContext(ctx)

	files, err := discover(inputDir)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	if len(files) == 0 {
		log.Warn("no documents found", "input", inputDir, "extension", Extension)
		return res, nil
	}
	log.Info("converting documents", "input", inputDir, "files", len(files))

	var content []string
	for _, name := range files {
		paras, err := c.Reader.Read(ctx, filepath.Join(inputDir, name))
		if err != nil {
			log.Error("document failed, continuing with next file", "file", name, "error", err)
			res.Failed = append(res.Failed, name)
			continue
		}
		lines := Reflow(name, paras)
		res.Files = append(res.Files, name)
		res.Blocks += countTrailers(lines)
		content = append(content, lines...)
	}

	if len(content) == 0 {
		log.Warn("no text blocks extracted; output not written")
		return res, nil
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return res, fmt.Errorf("creating output folder: %w", err)
	}
	outPath := filepath.Join(outputDir, fileName)
	if err := os.WriteFile(outPath, []byte(strings.Join(content, "")), 0o600); err != nil {
		return res, fmt.Errorf("writing output file: %w", err)
	}
	res.OutputPath = outPath
	log.Info("markdown written", "path", outPath, "blocks", res.Blocks)
	return res, nil
}

func discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, dir)
		}
		return nil, fmt.Errorf("reading input folder: %w", err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, lockFilePrefix) || !strings.HasSuffix(name, Extension) {
			continue
		}
		files = append(files, name)
	}
	return files, nil
}

func countTrailers(lines []string) int {
	n := 0
	for _, l := range lines {
		if strings.HasPrefix(l, TrailerLabel) && strings.HasSuffix(l, "\n\n") {
			n++
		}
	}
	return n
}
