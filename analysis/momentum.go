package analysis

import (
	"fmt"
	"math"

	"scanbrief/models"
	"scanbrief/scans"
)

const momentumTickerLimit = 10

// MomentumLabelNew marks a ticker with no first-half mentions, where a
// percent change would divide by zero.
const MomentumLabelNew = "NEW"

// Momentum compares per-scan mention rates between the window's two halves
// for the top tickers of the already-computed overall ranking.
func Momentum(records []models.ScanRecord, ranked []models.TickerCount) []models.TickerMomentum {
	if len(ranked) > momentumTickerLimit {
		ranked = ranked[:momentumTickerLimit]
	}
	first, second := splitHalves(records)
	firstTally := tallyHalf(first)
	secondTally := tallyHalf(second)

	out := make([]models.TickerMomentum, 0, len(ranked))
	for _, tc := range ranked {
		m := models.TickerMomentum{
			Name:       tc.Name,
			FirstRate:  rate(firstTally, tc.Name, len(first)),
			SecondRate: rate(secondTally, tc.Name, len(second)),
		}
		if m.FirstRate == 0 {
			m.Label = MomentumLabelNew
		} else {
			m.Change = int(math.Round((m.SecondRate - m.FirstRate) / m.FirstRate * 100))
			m.Label = fmt.Sprintf("%+d%%", m.Change)
		}
		out = append(out, m)
	}
	return out
}

func tallyHalf(records []models.ScanRecord) *scans.MentionTally {
	tally := scans.NewMentionTally()
	for _, rec := range records {
		scans.CollectTickers(rec, tally)
	}
	return tally
}

func rate(tally *scans.MentionTally, name string, scanCount int) float64 {
	if scanCount == 0 {
		return 0
	}
	return tally.Count(name) / float64(scanCount)
}
