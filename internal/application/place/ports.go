package place

import "context"

// Enricher is the outbound port to the LLM search service. It moves
// text only; decoding the model output is this package's concern.
type Enricher interface {
	// Fetch sends the prompt and returns the raw model output
	Fetch(ctx context.Context, prompt string) (string, error)
}

// Translator is the outbound port to the translation service.
// Language codes are lowercase base tags ("ko", "en").
type Translator interface {
	// Translate renders text from sourceLang into targetLang
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
