package place

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/koreat/backend/internal/domain/place"
)

// DecodeStatus tags the outcome of decoding model output
type DecodeStatus int

const (
	// DecodeOk means the payload parsed and carries information
	DecodeOk DecodeStatus = iota
	// DecodeRetryable means the response looks like an upstream error
	// page and a retry may succeed
	DecodeRetryable
	// DecodeFatal means the response is unusable and retrying is pointless
	DecodeFatal
)

// DecodeOutcome is the tagged result of the decode pipeline
type DecodeOutcome struct {
	Status DecodeStatus
	Result place.EnrichmentResult
	Err    error
}

var (
	errEmptyResponse   = errors.New("enrichment response is empty")
	errHTMLResponse    = errors.New("enrichment response looks like an HTML error page")
	errNoInformation   = errors.New("enrichment response carries no place information")
	errMalformedOutput = errors.New("enrichment response is not valid JSON")
)

// DecodeEnrichment runs the defensive pipeline over raw model output:
// detect error page, strip code fences, parse, reject empty payloads.
// Only the error-page case is worth retrying; everything else is a
// content failure that repeats on re-ask.
func DecodeEnrichment(raw string) DecodeOutcome {
	text := strings.TrimSpace(raw)
	if text == "" {
		return DecodeOutcome{Status: DecodeFatal, Err: errEmptyResponse}
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "<html") || strings.Contains(lower, "<!doctype") {
		return DecodeOutcome{Status: DecodeRetryable, Err: errHTMLResponse}
	}

	text = stripCodeFence(text)

	var result place.EnrichmentResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return DecodeOutcome{Status: DecodeFatal, Err: errMalformedOutput}
	}

	if result.Empty() {
		return DecodeOutcome{Status: DecodeFatal, Err: errNoInformation}
	}

	return DecodeOutcome{Status: DecodeOk, Result: result}
}

// stripCodeFence removes accidental ```json ... ``` wrapping.
// Models add it despite the JSON-only instruction.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// Drop a language hint on the opening fence line
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if firstLine == "" || firstLine == "json" {
			text = text[idx+1:]
		}
	}

	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
