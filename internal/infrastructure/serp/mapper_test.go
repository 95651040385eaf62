package serp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestMapToSearchResponse(t *testing.T) {
	t.Run("answer box maps to top-level price and text", func(t *testing.T) {
		wire := &wireResponse{
			AnswerBox: &wireAnswerBox{
				Price:    floatPtr(9500),
				Currency: "$",
				Source:   "https://chrono24.example",
				Snippet:  "around $9,500 these days",
			},
		}

		resp := mapToSearchResponse(wire)

		require.NotNil(t, resp.Price)
		assert.Equal(t, 9500.0, *resp.Price)
		assert.Equal(t, "$", resp.Currency)
		assert.Equal(t, "https://chrono24.example", resp.Source)
		assert.Equal(t, "around $9,500 these days", resp.Text)
		assert.Empty(t, resp.Results)
	})

	t.Run("response summary beats answer box snippet", func(t *testing.T) {
		wire := &wireResponse{
			AnswerBox: &wireAnswerBox{Snippet: "box snippet"},
			Summary:   "overall summary",
		}

		resp := mapToSearchResponse(wire)
		assert.Equal(t, "overall summary", resp.Text)
	})

	t.Run("organic results keep order and fields", func(t *testing.T) {
		wire := &wireResponse{
			OrganicResults: []wireResult{
				{
					Title:          "Listing one",
					Snippet:        "first snippet",
					Link:           "https://a.example",
					ExtractedPrice: floatPtr(9400),
					Currency:       "USD",
				},
				{
					Title:   "Listing two",
					Summary: "second summary",
					Link:    "https://b.example",
				},
			},
		}

		resp := mapToSearchResponse(wire)

		require.Len(t, resp.Results, 2)
		assert.Equal(t, "Listing one", resp.Results[0].Title)
		require.NotNil(t, resp.Results[0].Price)
		assert.Equal(t, 9400.0, *resp.Results[0].Price)
		assert.Equal(t, "USD", resp.Results[0].Currency)
		assert.Equal(t, "https://a.example", resp.Results[0].URL)

		assert.Equal(t, "Listing two", resp.Results[1].Title)
		assert.Nil(t, resp.Results[1].Price)
		assert.Equal(t, "second summary", resp.Results[1].Summary)
	})

	t.Run("empty wire response maps cleanly", func(t *testing.T) {
		resp := mapToSearchResponse(&wireResponse{})

		assert.Nil(t, resp.Price)
		assert.Empty(t, resp.Text)
		assert.Empty(t, resp.Results)
	})
}
