package docx

import (
	"context"
	"fmt"
	"strings"

	"github.com/irahardianto/qa2md/internal/platform/logger"
	"github.com/unidoc/unioffice/document"
)

// Reader extracts body paragraphs from .docx files. Tables are ignored.
type Reader struct{}

// NewReader creates a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read returns the paragraphs of the document at path in body order.
func (r *Reader) Read(ctx context.Context, path string) ([]Paragraph, error) {
	doc, err := document.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}

	paras := doc.Paragraphs()
	out := make([]Paragraph, 0, len(paras))
	for _, p := range paras {
		var sb strings.Builder
		for _, run := range p.Runs() {
			sb.WriteString(run.Text())
		}
		out = append(out, Paragraph{Style: p.Style(), Text: sb.String()})
	}

	logger.FromContext(ctx).Debug("document read", "path", path, "paragraphs", len(out))
	return out, nil
}
