package domain

import "time"

// PriceCandidate is a tentative price extracted from provider output.
// Value is nil when the text carried a currency marker but no parsable
// number; a candidate is never fabricated beyond what the text supports.
type PriceCandidate struct {
	Value    *float64 `json:"value,omitempty"`
	Currency string   `json:"currency,omitempty"`
	Raw      string   `json:"raw"`
	Source   string   `json:"source,omitempty"`
}

// LivePrice is a resolved market price stamped with its resolution instant.
// FromCache marks payloads served from the price cache; cached and fresh
// payloads are otherwise identical.
type LivePrice struct {
	PriceCandidate
	ResolvedAt time.Time `json:"ts"`
	FromCache  bool      `json:"fromCache,omitempty"`
}

// SearchResult is a single ranked entry from the web search provider.
// A result may carry a structured price, free text, or both.
type SearchResult struct {
	Title    string   `json:"title"`
	Snippet  string   `json:"snippet,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	URL      string   `json:"link,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Currency string   `json:"currency,omitempty"`
	Source   string   `json:"source,omitempty"`
}

// SearchResponse is the provider response: an optional top-level structured
// price, a ranked result list, and optional response-level free text.
type SearchResponse struct {
	Price    *float64       `json:"price,omitempty"`
	Currency string         `json:"currency,omitempty"`
	Source   string         `json:"source,omitempty"`
	Results  []SearchResult `json:"results"`
	Text     string         `json:"text,omitempty"`
}
