// Package record defines the Q&A record and its line-oriented Markdown form.
package record

import (
	"bufio"
	"io"
	"strings"
)

// Field labels of one output block.
const (
	QuestionLabel = "質問："
	AnswerLabel   = "回答："
	FileLabel     = "ファイル名："
	SheetLabel    = "シート名："
	Separator     = "---"
)

// QARecord is one question/answer pair and where it came from.
type QARecord struct {
	SourceFile  string `json:"source_file"`
	SourceSheet string `json:"source_sheet"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
}

// Valid reports whether both question and answer have non-blank text.
func (r QARecord) Valid() bool {
	return strings.TrimSpace(r.Question) != "" && strings.TrimSpace(r.Answer) != ""
}

// Write serializes records in order, one block each, with a "---" line
// between adjacent blocks and none after the last.
func Write(w io.Writer, records []QARecord) error {
	bw := bufio.NewWriter(w)
	for i, r := range records {
		if i > 0 {
			bw.WriteString(Separator + "\n")
		}
		bw.WriteString(QuestionLabel + r.Question + "\n")
		bw.WriteString(AnswerLabel + r.Answer + "\n")
		bw.WriteString(FileLabel + r.SourceFile + "\n")
		bw.WriteString(SheetLabel + r.SourceSheet + "\n")
	}
	return bw.Flush()
}
