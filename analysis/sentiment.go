package analysis

import (
	"fmt"
	"math"

	"scanbrief/models"
)

// Trend labels for the split-half sentiment comparison.
const (
	TrendRising    = "RISING"
	TrendDeclining = "DECLINING"
	TrendStable    = "STABLE"
	TrendNoData    = "NO DATA"
)

// AnalyzeSentiment computes the window's mean bullish/bearish scores, the
// bull:bear ratio and a split-half trend. An empty window degrades to zeros
// with a NO DATA trend.
func AnalyzeSentiment(records []models.ScanRecord) models.SentimentSummary {
	if len(records) == 0 {
		return models.SentimentSummary{RatioText: "0", Trend: TrendNoData}
	}

	bull := round1(meanBullish(records))
	bear := round1(meanBearish(records))

	summary := models.SentimentSummary{Bull: bull, Bear: bear}
	switch {
	case bear > 0:
		summary.Ratio = round2(bull / bear)
		summary.RatioText = fmt.Sprintf("%.2f", summary.Ratio)
	case bull > 0:
		// All-bullish window: the ratio is unbounded. Render it distinctly
		// and keep the numeric value at 0 for downstream arithmetic.
		summary.RatioText = "∞"
	default:
		summary.RatioText = "0"
	}

	first, second := splitHalves(records)
	firstMean := meanBullish(first)
	secondMean := meanBullish(second)
	switch {
	case secondMean > firstMean*1.1:
		summary.Trend = TrendRising
	case secondMean < firstMean*0.9:
		summary.Trend = TrendDeclining
	default:
		summary.Trend = TrendStable
	}
	return summary
}

func splitHalves(records []models.ScanRecord) (first, second []models.ScanRecord) {
	mid := len(records) / 2
	return records[:mid], records[mid:]
}

func meanBullish(records []models.ScanRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var total float64
	for _, rec := range records {
		if rec.Sentiment != nil {
			total += rec.Sentiment.Bullish
		}
	}
	return total / float64(len(records))
}

func meanBearish(records []models.ScanRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var total float64
	for _, rec := range records {
		if rec.Sentiment != nil {
			total += rec.Sentiment.Bearish
		}
	}
	return total / float64(len(records))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
