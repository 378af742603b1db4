package place

import (
	"strings"

	"github.com/koreat/backend/internal/domain/shared"
)

// MenuItem is a single menu or ticket entry attached to a place
type MenuItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// PlaceInfo is the cached enrichment result for a place.
// It is unique on (name, address-or-empty, language) and is treated as a
// permanent cache: no TTL, no background refresh. Only an explicit
// administrative overwrite mutates it after creation.
type PlaceInfo struct {
	shared.BaseAggregateRoot
	Name          string
	Address       string
	Language      string
	Title         string
	Category      string
	Menu          []MenuItem
	Reviews       []string
	ReferenceURLs []string
}

// NewPlaceInfo creates a cache entry for the given key with the
// enrichment result attached.
func NewPlaceInfo(name, address, language string, result EnrichmentResult) (*PlaceInfo, error) {
	name = strings.TrimSpace(name)
	language = strings.TrimSpace(language)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Place name is required")
	}
	if language == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Language is required")
	}
	if result.Empty() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Enrichment result carries no information")
	}

	return &PlaceInfo{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Address:           strings.TrimSpace(address),
		Language:          language,
		Title:             result.Title,
		Category:          result.Category,
		Menu:              result.Menu,
		Reviews:           result.Reviews,
		ReferenceURLs:     result.ReferenceURLs,
	}, nil
}

// Overwrite replaces the cached content directly, bypassing enrichment.
// Used by the staff update operation and by approved change requests.
func (p *PlaceInfo) Overwrite(title, category string, menu []MenuItem, reviews []string) {
	if title != "" {
		p.Title = title
	}
	if category != "" {
		p.Category = category
	}
	if menu != nil {
		p.Menu = menu
	}
	if reviews != nil {
		p.Reviews = reviews
	}
	p.Touch()
	p.IncrementVersion()
}

// ReplaceMenu swaps only the menu/ticket field. Approved change
// requests are applied verbatim through this.
func (p *PlaceInfo) ReplaceMenu(menu []MenuItem) {
	p.Menu = menu
	p.Touch()
	p.IncrementVersion()
}

// EnrichmentResult is the structured payload produced by the enrichment
// decode pipeline.
type EnrichmentResult struct {
	Title         string     `json:"title"`
	Category      string     `json:"category"`
	Menu          []MenuItem `json:"menu"`
	Reviews       []string   `json:"reviews"`
	ReferenceURLs []string   `json:"reference_urls"`
}

// Empty reports whether the payload carries no information at all.
// Structurally valid but empty payloads must not be cached.
func (r EnrichmentResult) Empty() bool {
	return r.Title == "" && r.Category == "" &&
		len(r.Menu) == 0 && len(r.Reviews) == 0 && len(r.ReferenceURLs) == 0
}
