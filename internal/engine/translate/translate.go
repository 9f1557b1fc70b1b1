// Package translate turns non-Japanese cell text into Japanese, best effort.
package translate

import (
	"context"

	"github.com/irahardianto/qa2md/internal/engine/cell"
	"github.com/irahardianto/qa2md/internal/engine/llm"
	"github.com/irahardianto/qa2md/internal/platform/logger"
)

const previewRunes = 30

// Translator sends one unstructured LLM request per text that needs it.
type Translator struct {
	provider llm.Provider
}

// New creates a Translator backed by provider.
func New(provider llm.Provider) *Translator {
	return &Translator{provider: provider}
}

// TranslateIfNeeded returns text unchanged when it is empty or already
// Japanese. Otherwise markers become newlines for the model and the reply is
// normalized again. A failed call yields the original text.
func (t *Translator) TranslateIfNeeded(ctx context.Context, text string) string {
	if text == "" || cell.IsTargetLanguage(text) {
		return text
	}

	log := logger.FromContext(ctx)
	source := cell.ExpandLineBreaks(text)
	log.Debug("translating", "preview", preview(source))

	reply, err := t.provider.Complete(ctx, llm.BuildTranslationPrompt(source), false)
	if err != nil {
		log.Warn("translation failed, keeping original text", "preview", preview(source), "error", err)
		return text
	}

	translated := cell.Normalize(reply)
	if translated == "" {
		return text
	}
	return translated
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= previewRunes {
		return s
	}
	return string(r[:previewRunes]) + "..."
}
