// Package columns asks the LLM which columns of a sheet hold questions and answers.
package columns

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/irahardianto/qa2md/internal/engine/llm"
	"github.com/irahardianto/qa2md/internal/engine/table"
	"github.com/irahardianto/qa2md/internal/platform/logger"
)

// SampleRows is how many leading rows are shown to the model.
const SampleRows = 5

var (
	// ErrNoMapping means the model gave no usable answer.
	ErrNoMapping = errors.New("column mapping unavailable")

	// ErrUnknownColumn means the model named a column the table does not have.
	ErrUnknownColumn = errors.New("column not present in table")
)

// Mapping names the question and answer columns of one table.
type Mapping struct {
	Question string `json:"question_column"`
	Answer   string `json:"answer_column"`
}

// Validate checks that both names are columns of t.
func (m Mapping) Validate(t *table.Table) error {
	for _, name := range []string{m.Question, m.Answer} {
		if name == "" || !t.HasColumn(name) {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
	}
	return nil
}

// Inferrer picks the question/answer columns with one structured LLM call.
type Inferrer struct {
	provider llm.Provider
}

// NewInferrer creates an Inferrer backed by provider.
func NewInferrer(provider llm.Provider) *Inferrer {
	return &Inferrer{provider: provider}
}

// Infer returns the mapping for t. label names the sheet in the prompt,
// typically "file / sheet". Gateway failures and malformed replies are
// wrapped in ErrNoMapping; names outside the column set in ErrUnknownColumn.
func (i *Inferrer) Infer(ctx context.Context, t *table.Table, label string) (Mapping, error) {
	log := logger.FromContext(ctx)
	log.Debug("inferring question/answer columns", "sheet", label, "columns", len(t.Columns))

	prompt := llm.BuildColumnPrompt(label, t.Columns, t.Head(SampleRows).Markdown())

	reply, err := i.provider.Complete(ctx, prompt, true)
	if err != nil {
		return Mapping{}, fmt.Errorf("%w: %w", ErrNoMapping, err)
	}

	m, err := parseMapping(reply)
	if err != nil {
		return Mapping{}, err
	}
	if err := m.Validate(t); err != nil {
		return Mapping{}, err
	}

	log.Debug("columns inferred", "sheet", label, "question", m.Question, "answer", m.Answer)
	return m, nil
}

func parseMapping(reply string) (Mapping, error) {
	var m Mapping
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &m); err != nil {
		return Mapping{}, fmt.Errorf("%w: reply is not a JSON object: %v", ErrNoMapping, err)
	}
	return m, nil
}
