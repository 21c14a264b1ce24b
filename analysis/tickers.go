package analysis

import (
	"sort"

	"scanbrief/models"
	"scanbrief/scans"
)

const topTickerLimit = 20

// ExtractTickers aggregates ticker mentions across all records and all input
// shapes into one ranked list, capped at the top 20. Ties keep first-seen
// order.
func ExtractTickers(records []models.ScanRecord) []models.TickerCount {
	tally := scans.NewMentionTally()
	for _, rec := range records {
		scans.CollectTickers(rec, tally)
	}
	ranked := tally.Entries()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Mentions > ranked[j].Mentions
	})
	if len(ranked) > topTickerLimit {
		ranked = ranked[:topTickerLimit]
	}
	return ranked
}
