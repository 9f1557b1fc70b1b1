package report

import (
	"encoding/json"
)

// JSONFormatter outputs a Summary as pretty-printed JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns the Summary as indented JSON.
func (f *JSONFormatter) Format(summary Summary) string {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return `{"error": "failed to marshal summary"}`
	}
	return string(data)
}
