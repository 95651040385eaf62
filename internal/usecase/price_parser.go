package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/chronolens/backend/internal/domain"
)

// pricePattern matches a currency marker (symbol or ISO-style code)
// optionally followed by whitespace and a numeric token that may carry
// thousands separators and a decimal point. Codes require word boundaries
// so "AUD" does not fire inside "Audemars".
var pricePattern = regexp.MustCompile(`(?i)(\b(?:USD|EUR|GBP|CHF|JPY|HKD|SGD|AUD|CAD)\b|[$€£¥])\s*([0-9][0-9.,]*)`)

// ParsePrice scans unstructured text for a currency-adjacent numeric token.
// It returns a full candidate when the number parses, a partial candidate
// (currency and raw only) when a marker is present but the adjacent number
// is malformed, and nil when no currency-adjacent pattern exists at all.
// This is a best-effort heuristic over prose, not a validated price grammar.
func ParsePrice(text string) *domain.PriceCandidate {
	match := pricePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	currency := match[1]
	if len(currency) > 1 {
		currency = strings.ToUpper(currency)
	}

	// Trailing separators belong to the sentence, not the number
	number := strings.TrimRight(match[2], ".,")
	raw := currency + " " + number

	value, err := parseAmount(number)
	if err != nil {
		// Preserve the partial signal for the caller to judge
		return &domain.PriceCandidate{Currency: currency, Raw: raw}
	}

	return &domain.PriceCandidate{Value: &value, Currency: currency, Raw: raw}
}

// parseAmount interprets commas as thousands separators ("9,500" -> 9500)
func parseAmount(number string) (float64, error) {
	cleaned := strings.ReplaceAll(number, ",", "")
	return strconv.ParseFloat(cleaned, 64)
}
