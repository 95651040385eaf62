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

const (
	defaultPriceTTL      = 5 * time.Minute
	defaultSearchTimeout = 10 * time.Second

	// providerTag labels candidates whose text carried no identifiable source
	providerTag = "websearch"
)

// marketplaceHints is appended to every live-price query to steer the
// provider toward listing results
var marketplaceHints = []string{"watch", "price", "listing", "chrono24", "market value"}

// PriceServiceConfig holds configuration for the price service
type PriceServiceConfig struct {
	CacheTTL      time.Duration
	SearchTimeout time.Duration
}

// PriceService resolves live market prices for catalog entries.
// Flow: check cache -> query search provider -> extract candidate -> cache -> return
type PriceService struct {
	cache         domain.CacheRepository
	search        domain.SearchProvider
	cacheTTL      time.Duration
	searchTimeout time.Duration
}

// NewPriceService creates a new price service with dependencies
func NewPriceService(
	cache domain.CacheRepository,
	search domain.SearchProvider,
	config PriceServiceConfig,
) *PriceService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = defaultPriceTTL
	}
	searchTimeout := config.SearchTimeout
	if searchTimeout == 0 {
		searchTimeout = defaultSearchTimeout
	}
	return &PriceService{
		cache:         cache,
		search:        search,
		cacheTTL:      cacheTTL,
		searchTimeout: searchTimeout,
	}
}

// Resolve returns a current market price for the given catalog entry, or
// (nil, nil) when none could be found. Provider failures and timeouts are
// logged and degrade to "no live price"; they are never propagated, so a
// price question still gets a catalog answer.
func (s *PriceService) Resolve(ctx context.Context, brand, model, reference string) (*domain.LivePrice, error) {
	key := priceCacheKey(brand, model, reference)

	if cached := s.getFromCache(ctx, key); cached != nil {
		observability.PriceCacheHits.Inc()
		served := *cached
		served.FromCache = true
		return &served, nil
	}
	observability.PriceCacheMisses.Inc()

	query := buildPriceQuery(brand, model, reference)

	// Per-call deadline: a slow provider degrades instead of stalling the request
	sctx, cancel := context.WithTimeout(ctx, s.searchTimeout)
	defer cancel()

	observability.SearchCallsTotal.Inc()
	resp, err := s.search.Search(sctx, query)
	if err != nil {
		observability.SearchFailuresTotal.Inc()
		log.Printf("[Price] search failed for %q: %v", query, err)
		return nil, nil
	}

	candidate := extractCandidate(resp)
	if candidate == nil {
		log.Printf("[Price] no candidate found for %q", query)
		return nil, nil
	}
	if candidate.Source == "" {
		candidate.Source = providerTag
	}

	live := &domain.LivePrice{
		PriceCandidate: *candidate,
		ResolvedAt:     time.Now().UTC(),
	}
	observability.LivePricesResolved.Inc()

	// Entries with neither brand nor model would collide on an all-empty
	// key, so sparse lookups are resolved but never cached
	if cacheable(brand, model) {
		if err := s.setInCache(ctx, key, live); err != nil {
			log.Printf("[Price] cache write failed for %q: %v", key, err)
		}
	}

	return live, nil
}

// extractCandidate walks the response in strict priority order: top-level
// structured price, then the ranked result list, then response-level free
// text. The first candidate with a numeric value wins; later stages are
// not consulted.
func extractCandidate(resp *domain.SearchResponse) *domain.PriceCandidate {
	if resp == nil {
		return nil
	}

	if resp.Price != nil {
		return &domain.PriceCandidate{
			Value:    resp.Price,
			Currency: resp.Currency,
			Raw:      formatStructuredRaw(resp.Currency, *resp.Price),
			Source:   resp.Source,
		}
	}

	for _, result := range resp.Results {
		if result.Price != nil {
			source := result.URL
			if source == "" {
				source = result.Source
			}
			return &domain.PriceCandidate{
				Value:    result.Price,
				Currency: result.Currency,
				Raw:      formatStructuredRaw(result.Currency, *result.Price),
				Source:   source,
			}
		}

		text := strings.TrimSpace(result.Title + " " + result.Snippet + " " + result.Summary)
		if c := ParsePrice(text); c != nil && c.Value != nil {
			c.Source = result.URL
			return c
		}
	}

	if c := ParsePrice(resp.Text); c != nil && c.Value != nil {
		return c
	}

	return nil
}

// buildPriceQuery concatenates brand, model, reference (when present) and
// the marketplace hint terms into one provider query
func buildPriceQuery(brand, model, reference string) string {
	parts := make([]string, 0, 3+len(marketplaceHints))
	for _, p := range []string{brand, model, reference} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, marketplaceHints...)
	return strings.Join(parts, " ")
}

// priceCacheKey builds the normalized cache key.
// Format: "price:{brand}|{model}|{reference}", fields lower-cased and trimmed.
func priceCacheKey(brand, model, reference string) string {
	return fmt.Sprintf("price:%s|%s|%s",
		normalizeKeyField(brand),
		normalizeKeyField(model),
		normalizeKeyField(reference),
	)
}

func normalizeKeyField(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func cacheable(brand, model string) bool {
	return normalizeKeyField(brand) != "" && normalizeKeyField(model) != ""
}

func formatStructuredRaw(currency string, value float64) string {
	number := strconv.FormatFloat(value, 'f', -1, 64)
	if currency == "" {
		return number
	}
	return currency + " " + number
}

// getFromCache retrieves a previously resolved price; any miss or decode
// problem reads as "not cached"
func (s *PriceService) getFromCache(ctx context.Context, key string) *domain.LivePrice {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	if live, ok := value.(*domain.LivePrice); ok {
		return live
	}
	// The cache JSON-roundtrips values, so entries come back as maps
	if dataMap, ok := value.(map[string]interface{}); ok {
		return mapToLivePrice(dataMap)
	}
	return nil
}

// setInCache stores a resolved price under the normalized key
func (s *PriceService) setInCache(ctx context.Context, key string, live *domain.LivePrice) error {
	return s.cache.Set(ctx, key, live, s.cacheTTL)
}

// mapToLivePrice converts a map (from JSON cache) to a LivePrice
func mapToLivePrice(data map[string]interface{}) *domain.LivePrice {
	live := &domain.LivePrice{}

	if v, ok := data["value"].(float64); ok {
		live.Value = &v
	}
	if v, ok := data["currency"].(string); ok {
		live.Currency = v
	}
	if v, ok := data["raw"].(string); ok {
		live.Raw = v
	}
	if v, ok := data["source"].(string); ok {
		live.Source = v
	}
	if v, ok := data["ts"].(string); ok {
		if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
			live.ResolvedAt = ts
		}
	}

	return live
}
