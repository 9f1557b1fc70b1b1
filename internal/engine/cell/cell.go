// Package cell turns spreadsheet cell values into single-field Markdown-safe
// text and decides whether text is already Japanese.
package cell

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// LineBreak marks an intentional line break inside one logical cell.
const LineBreak = "<br>"

// fullWidthPipe replaces "|" so cell text cannot open a Markdown table column.
const fullWidthPipe = "｜"

// breakRun matches one or more markers, each optionally followed by whitespace.
// The class also covers NEL, the Unicode line and paragraph separators and the
// ASCII information separators.
var breakRun = regexp.MustCompile(`(?:<br>[\s\v\p{Z}\x{85}\x1c-\x1f]*)+`)

// targetScript covers hiragana, katakana and the CJK blocks up to U+3DFF,
// plus the CJK unified ideographs.
var targetScript = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3040, Hi: 0x3dff, Stride: 1},
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1},
	},
}

// Normalize converts v to clean text: carriage returns dropped, pipes
// replaced, newlines turned into LineBreak, marker runs collapsed and the
// result trimmed. Normalize(Normalize(x)) == Normalize(x).
func Normalize(v any) string {
	s := Text(v)
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "|", fullWidthPipe)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\n", LineBreak)
	s = breakRun.ReplaceAllString(s, LineBreak)
	return strings.TrimSpace(s)
}

// Text renders any cell value as text. Nil is the empty string.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// ExpandLineBreaks turns markers back into real newlines.
func ExpandLineBreaks(s string) string {
	return strings.ReplaceAll(s, LineBreak, "\n")
}

// IsTargetLanguage reports whether v is a string holding at least one
// Japanese code point. One such rune anywhere is enough; non-strings are false.
func IsTargetLanguage(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.Is(targetScript, r)
	}) >= 0
}
