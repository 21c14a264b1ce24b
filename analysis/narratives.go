package analysis

import "scanbrief/models"

// majorAssets are excluded when counting long-tail ticker attention.
var majorAssets = map[string]bool{
	"BTC": true, "ETH": true, "SOL": true, "MSTR": true,
	"SPX": true, "NVDA": true, "TSLA": true,
}

// tradfiTickers flag equity-market crossover chatter.
var tradfiTickers = map[string]bool{
	"MSTR": true, "SPX": true, "NVDA": true, "TSLA": true, "AAPL": true,
}

// DetectNarratives evaluates a fixed rule set against the ranked tickers and
// the fear gauge. Each rule appends independently.
func DetectNarratives(tickers []models.TickerCount, commodities []models.TickerCount, fearGauge string) []models.Narrative {
	var narratives []models.Narrative

	var longTail, longTailMentions int
	var tradfiMentions int
	tradfiPresent := false
	for _, tc := range tickers {
		if !majorAssets[tc.Name] {
			longTail++
			longTailMentions += tc.Mentions
		}
		if tradfiTickers[tc.Name] {
			tradfiPresent = true
			tradfiMentions += tc.Mentions
		}
	}

	if longTail > 5 {
		narratives = append(narratives, models.Narrative{
			Type:     "🐸",
			Label:    "Memecoin attention rotation",
			Strength: longTailMentions,
		})
	}
	if tradfiPresent {
		narratives = append(narratives, models.Narrative{
			Type:     "🏦",
			Label:    "TradFi crossover chatter",
			Strength: tradfiMentions,
		})
	}
	if fearGauge == "HIGH" || fearGauge == "EXTREME" {
		narratives = append(narratives, models.Narrative{
			Type:     "🥇",
			Label:    "Precious metals bid",
			Strength: mentionsOf(commodities, "gold"),
		})
	}
	return narratives
}

func mentionsOf(counts []models.TickerCount, name string) int {
	for _, c := range counts {
		if c.Name == name {
			return c.Mentions
		}
	}
	return 0
}
