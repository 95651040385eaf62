package serp

import "github.com/chronolens/backend/internal/domain"

// wireResponse is the provider's JSON shape. An answer box carries the
// top-level structured price and free text; organic results carry per-result
// structured prices or prose.
type wireResponse struct {
	AnswerBox      *wireAnswerBox `json:"answer_box,omitempty"`
	OrganicResults []wireResult   `json:"organic_results"`
	Summary        string         `json:"summary,omitempty"`
}

type wireAnswerBox struct {
	Price    *float64 `json:"price,omitempty"`
	Currency string   `json:"currency,omitempty"`
	Source   string   `json:"source,omitempty"`
	Snippet  string   `json:"snippet,omitempty"`
}

type wireResult struct {
	Title          string   `json:"title"`
	Snippet        string   `json:"snippet,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	Link           string   `json:"link,omitempty"`
	ExtractedPrice *float64 `json:"extracted_price,omitempty"`
	Currency       string   `json:"currency,omitempty"`
	Source         string   `json:"source,omitempty"`
}

// mapToSearchResponse converts the wire shape to the domain shape. The
// answer-box snippet doubles as the response-level free text when no
// separate summary is present.
func mapToSearchResponse(wire *wireResponse) *domain.SearchResponse {
	resp := &domain.SearchResponse{
		Text: wire.Summary,
	}

	if wire.AnswerBox != nil {
		resp.Price = wire.AnswerBox.Price
		resp.Currency = wire.AnswerBox.Currency
		resp.Source = wire.AnswerBox.Source
		if resp.Text == "" {
			resp.Text = wire.AnswerBox.Snippet
		}
	}

	resp.Results = make([]domain.SearchResult, 0, len(wire.OrganicResults))
	for _, r := range wire.OrganicResults {
		resp.Results = append(resp.Results, domain.SearchResult{
			Title:    r.Title,
			Snippet:  r.Snippet,
			Summary:  r.Summary,
			URL:      r.Link,
			Price:    r.ExtractedPrice,
			Currency: r.Currency,
			Source:   r.Source,
		})
	}

	return resp
}
