// Package docx reflows the paragraphs of Word documents into Markdown blocks,
// each followed by the name of the file it came from.
package docx

import (
	"strings"
)

// TrailerLabel starts the line naming a block's source file.
const TrailerLabel = "ファイル名："

// Paragraph is one body paragraph: its style name and plain text.
type Paragraph struct {
	Style string
	Text  string
}

// Phase is the state of the reflow reducer.
type Phase int

const (
	// Idle means no block is open.
	Idle Phase = iota
	// Collecting means text lines are being gathered into a block.
	Collecting
)

// State is the reducer state between paragraphs.
type State struct {
	Phase Phase
	Block []string
}

// Reducer groups paragraphs into blocks separated by blank paragraphs.
type Reducer struct {
	trailer string
}

// NewReducer returns a reducer that ends every block with the file trailer.
func NewReducer(fileName string) Reducer {
	return Reducer{trailer: TrailerLabel + fileName + "\n\n"}
}

// Step consumes one paragraph and returns the next state plus any output.
// A blank paragraph flushes an open block; repeated blanks emit nothing.
func (r Reducer) Step(s State, p Paragraph) (State, []string) {
	text := strings.TrimSpace(p.Text)

	if text == "" {
		if s.Phase == Idle {
			return s, nil
		}
		return State{Phase: Idle}, r.Flush(s)
	}

	block := append(s.Block[:len(s.Block):len(s.Block)], markdownLine(p.Style, text))
	return State{Phase: Collecting, Block: block}, nil
}

// Flush emits the pending block and its trailer, if any.
func (r Reducer) Flush(s State) []string {
	if s.Phase == Idle || len(s.Block) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.Block)+1)
	out = append(out, s.Block...)
	return append(out, r.trailer)
}

// Reflow runs the reducer over paras and flushes the final block.
func Reflow(fileName string, paras []Paragraph) []string {
	r := NewReducer(fileName)
	var (
		s   State
		out []string
	)
	for _, p := range paras {
		var emitted []string
		s, emitted = r.Step(s, p)
		out = append(out, emitted...)
	}
	return append(out, r.Flush(s)...)
}

// markdownLine renders one paragraph according to its style.
func markdownLine(style, text string) string {
	key := strings.ToLower(strings.ReplaceAll(style, " ", ""))
	switch {
	case strings.Contains(key, "heading1"):
		return "# " + text + "\n"
	case strings.Contains(key, "heading2"):
		return "## " + text + "\n"
	case strings.Contains(key, "heading3"):
		return "### " + text + "\n"
	case strings.Contains(key, "heading4"):
		return "#### " + text + "\n"
	case strings.Contains(key, "listbullet"):
		return "- " + text + "\n"
	default:
		return text + "\n"
	}
}
