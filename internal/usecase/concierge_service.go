package usecase

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/chronolens/backend/internal/domain"
	"github.com/chronolens/backend/internal/observability"
)

const noMatchAnswer = "I couldn't find a matching watch in the catalog for that question."

// ConciergeService is the top-level query-resolution pipeline: intent
// classification, catalog retrieval and conditional live-price resolution
// composed into one request/response cycle.
type ConciergeService struct {
	catalog *CatalogService
	prices  *PriceService
	intent  *IntentClassifier
}

// NewConciergeService creates the pipeline from its component services
func NewConciergeService(
	catalog *CatalogService,
	prices *PriceService,
	intent *IntentClassifier,
) *ConciergeService {
	return &ConciergeService{
		catalog: catalog,
		prices:  prices,
		intent:  intent,
	}
}

// Ask answers a free-text question about the catalog. Empty questions are
// rejected before any collaborator call; retrieval failures surface; price
// resolution failures degrade to a catalog-only answer. The Answer field of
// the result is always non-empty.
func (s *ConciergeService) Ask(ctx context.Context, question string) (*domain.AnswerResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, domain.ErrInvalidRequest
	}
	observability.QuestionsTotal.Inc()

	match, err := s.catalog.Retrieve(ctx, question)
	if err != nil {
		return nil, err
	}
	if match == nil {
		observability.CatalogMissesTotal.Inc()
		return &domain.AnswerResult{Answer: noMatchAnswer}, nil
	}

	if !s.intent.NeedsLivePrice(question) {
		return &domain.AnswerResult{
			Answer:   catalogAnswer(match),
			Metadata: match,
		}, nil
	}

	live, err := s.prices.Resolve(ctx, match.Brand, match.ModelName, match.ReferenceNumber)
	if err != nil {
		log.Printf("[Concierge] price resolution error: %v", err)
		live = nil
	}
	if live == nil || live.Value == nil {
		return &domain.AnswerResult{
			Answer:   catalogAnswer(match) + " I couldn't fetch a live market price right now.",
			Metadata: match,
		}, nil
	}

	return &domain.AnswerResult{
		Answer:   priceAnswer(match, live),
		Metadata: match,
		Provenance: []domain.Provenance{
			{Source: live.Source, Raw: live.Raw},
		},
	}, nil
}

// catalogAnswer renders the brand/model/reference/description of a match.
// Fields are already normalized, so empties just drop out of the sentence.
func catalogAnswer(m *domain.CatalogMatch) string {
	name := strings.TrimSpace(m.Brand + " " + m.ModelName)
	if name == "" {
		name = "This watch"
	}
	if m.ReferenceNumber != "" {
		name += fmt.Sprintf(" (ref. %s)", m.ReferenceNumber)
	}
	if m.Description == "" {
		return name + "."
	}
	return fmt.Sprintf("%s: %s", name, m.Description)
}

// priceAnswer renders a price-bearing message with currency, value, source
// and resolution timestamp
func priceAnswer(m *domain.CatalogMatch, live *domain.LivePrice) string {
	name := strings.TrimSpace(m.Brand + " " + m.ModelName)
	if m.ReferenceNumber != "" {
		name += fmt.Sprintf(" (ref. %s)", m.ReferenceNumber)
	}

	amount := strings.TrimSpace(live.Currency + " " + strconv.FormatFloat(*live.Value, 'f', -1, 64))
	return fmt.Sprintf("The %s is currently listed around %s (source: %s, as of %s).",
		name, amount, live.Source, live.ResolvedAt.Format(time.RFC3339))
}
