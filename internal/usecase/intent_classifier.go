package usecase

import "strings"

// priceIntentTerms is the fixed vocabulary of price-seeking terms. A false
// positive is cheap (the resolver degrades to "no live price"); a false
// negative only under-serves the answer, so the gate stays lexical.
var priceIntentTerms = []string{
	"price",
	"cost",
	"market",
	"listing",
	"resale",
	"sell",
	"selling",
	"how much",
	"current price",
	"value",
	"worth",
	"retail",
	"going for",
}

// IntentClassifier decides whether a question needs live-price augmentation
type IntentClassifier struct {
	terms []string
}

// NewIntentClassifier creates a classifier over the built-in vocabulary
// plus any operator-configured extra terms
func NewIntentClassifier(extraTerms []string) *IntentClassifier {
	terms := make([]string, 0, len(priceIntentTerms)+len(extraTerms))
	terms = append(terms, priceIntentTerms...)
	for _, t := range extraTerms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			terms = append(terms, t)
		}
	}
	return &IntentClassifier{terms: terms}
}

// NeedsLivePrice reports whether the question asks about current market
// price. Case-insensitive substring match; pure and total.
func (c *IntentClassifier) NeedsLivePrice(question string) bool {
	q := strings.ToLower(question)
	for _, term := range c.terms {
		if strings.Contains(q, term) {
			return true
		}
	}
	return false
}
