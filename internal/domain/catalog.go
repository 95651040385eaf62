package domain

// CatalogMatch represents the best-scoring catalog entry for a question.
// Missing metadata fields are normalized to empty strings so that answer
// templates never interpolate absent values.
type CatalogMatch struct {
	ID              string  `json:"id,omitempty"`
	Score           float64 `json:"score,omitempty"`
	Brand           string  `json:"brand"`
	ModelName       string  `json:"modelName"`
	ReferenceNumber string  `json:"referenceNumber"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Movement        string  `json:"movement"`
	Caliber         string  `json:"caliber"`
}

// AskRequest represents a concierge question
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// Provenance records where a live price figure was extracted from
type Provenance struct {
	Source string `json:"source"`
	Raw    string `json:"raw"`
}

// AnswerResult is the response to a single concierge question
type AnswerResult struct {
	Answer     string        `json:"answer"`
	Metadata   *CatalogMatch `json:"metadata,omitempty"`
	Provenance []Provenance  `json:"provenance,omitempty"`
}
