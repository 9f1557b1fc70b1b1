package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const columnPromptTemplate = `ファイル「%s」のデータサンプルを読み、「質問」と「回答」にあたるカラムを1つずつ選んでください。

# カラム名の一覧
%s

# データサンプル
%s

# 指示
- 「質問」に最も合うカラム名を question_column に、「回答」に最も合うカラム名を answer_column に入れてください。
- カラム名だけでなく、データサンプルの中身を優先して判断してください。
- 値は「カラム名の一覧」にある文字列と完全に一致させてください。一覧にない文字列は絶対に作らないでください。
- 似た言い換え（例:「質問内容」）より、一覧に実在する名前（例:「質問」）を必ず選んでください。

JSONオブジェクトだけを返してください。
例: {"question_column": "質問", "answer_column": "回答"}`

const translationPromptTemplate = "以下のテキストを自然な日本語に翻訳してください。訳文だけを返してください:\n\n%s"

// BuildColumnPrompt asks for the question/answer column pair of one sheet.
// label identifies the sheet (file / sheet), sample is a rendered table head.
func BuildColumnPrompt(label string, columns []string, sample string) string {
	return fmt.Sprintf(columnPromptTemplate, label, columnList(columns), sample)
}

// BuildTranslationPrompt asks for a plain Japanese translation of text.
func BuildTranslationPrompt(text string) string {
	return fmt.Sprintf(translationPromptTemplate, text)
}

// columnList renders names as a JSON array without HTML escaping, so that
// names such as "Q&A" reach the model verbatim.
func columnList(columns []string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(columns); err != nil {
		return "[" + strings.Join(columns, ", ") + "]"
	}
	return strings.TrimSpace(buf.String())
}
