package analysis

import (
	"time"

	"scanbrief/models"
)

// ScanSource yields the scan records for a trailing window. Satisfied by
// *scans.Loader.
type ScanSource interface {
	Load(hours int) []models.ScanRecord
}

// DefaultWindowHours is used when the caller passes no usable window.
const DefaultWindowHours = 24

// GenerateBrief recomputes the full intelligence brief for the window. It
// never fails: missing or malformed upstream data degrades to an empty,
// NO DATA brief.
func GenerateBrief(source ScanSource, hours int) models.Brief {
	if hours < 0 {
		hours = DefaultWindowHours
	}
	records := source.Load(hours)

	sentiment := AnalyzeSentiment(records)
	tickers := ExtractTickers(records)
	commodities := ExtractCommodities(records)
	fear := FearGauge(commodities)

	return models.Brief{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		WindowHours: hours,
		ScanCount:   len(records),
		Sentiment:   sentiment,
		Regime:      Regime(sentiment.Ratio),
		Tickers:     tickers,
		Momentum:    Momentum(records, tickers),
		Commodities: commodities,
		FearGauge:   fear,
		Narratives:  DetectNarratives(tickers, commodities, fear),
		TopPosts:    TopPosts(records, DefaultTopPosts),
	}
}
