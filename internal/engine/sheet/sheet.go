// Package sheet turns one table into validated Q&A records.
package sheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/irahardianto/qa2md/internal/engine/cell"
	"github.com/irahardianto/qa2md/internal/engine/columns"
	"github.com/irahardianto/qa2md/internal/engine/record"
	"github.com/irahardianto/qa2md/internal/engine/table"
	"github.com/irahardianto/qa2md/internal/platform/logger"
)

var (
	// ErrInvalidMapping means no usable question/answer column pair was found.
	ErrInvalidMapping = errors.New("invalid column mapping")

	// ErrNoRecords means every row had an empty question or answer.
	ErrNoRecords = errors.New("no valid Q&A rows")
)

// ColumnInferrer picks the question and answer columns of a table.
type ColumnInferrer interface {
	Infer(ctx context.Context, t *table.Table, label string) (columns.Mapping, error)
}

// TextTranslator translates one text when it is not Japanese yet.
type TextTranslator interface {
	TranslateIfNeeded(ctx context.Context, text string) string
}

// Processor runs column inference, normalization and translation over a sheet.
type Processor struct {
	Inferrer   ColumnInferrer
	Translator TextTranslator
}

// NewProcessor creates a Processor.
func NewProcessor(inferrer ColumnInferrer, translator TextTranslator) *Processor {
	return &Processor{Inferrer: inferrer, Translator: translator}
}

// Process returns the sheet's records in row order. It fails with
// ErrInvalidMapping when columns cannot be resolved and ErrNoRecords when
// nothing survives filtering; in both cases the sheet contributes nothing.
func (p *Processor) Process(ctx context.Context, t *table.Table, fileName, sheetName string) ([]record.QARecord, error) {
	log := logger.FromContext(ctx).With("file", fileName, "sheet", sheetName)

	mapping, err := p.Inferrer.Infer(ctx, t, fileName+" / "+sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMapping, err)
	}
	if err := mapping.Validate(t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMapping, err)
	}

	filled := t.FillMissing()
	questions := normalizeAll(filled.Column(mapping.Question))
	answers := normalizeAll(filled.Column(mapping.Answer))

	log.Info("translating question/answer text where needed",
		"question_column", mapping.Question,
		"answer_column", mapping.Answer,
		"rows", len(questions),
	)
	for i := range questions {
		questions[i] = p.Translator.TranslateIfNeeded(ctx, questions[i])
	}
	for i := range answers {
		answers[i] = p.Translator.TranslateIfNeeded(ctx, answers[i])
	}

	records := make([]record.QARecord, 0, len(questions))
	for i := range questions {
		r := record.QARecord{
			SourceFile:  fileName,
			SourceSheet: sheetName,
			Question:    questions[i],
			Answer:      answers[i],
		}
		if r.Valid() {
			records = append(records, r)
		}
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	log.Info("Q&A records extracted", "records", len(records))
	return records, nil
}

func normalizeAll(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = cell.Normalize(v)
	}
	return out
}
