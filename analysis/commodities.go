package analysis

import (
	"sort"

	"scanbrief/models"
	"scanbrief/scans"
)

// keywordCategories are the scanner categories that feed the commodity
// ranking and the fear gauge.
var keywordCategories = []string{"commodities", "metals", "macro", "industry"}

// ExtractCommodities aggregates keyword mentions across the fixed categories
// into one ranked list. A keyword appearing under two categories in the same
// record has its counts summed, not deduplicated.
func ExtractCommodities(records []models.ScanRecord) []models.TickerCount {
	tally := scans.NewMentionTally()
	for _, rec := range records {
		for _, category := range keywordCategories {
			keywords := rec.KeywordMentions[category]
			if len(keywords) == 0 {
				continue
			}
			names := make([]string, 0, len(keywords))
			for name := range keywords {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				tally.Add(name, keywords[name])
			}
		}
	}
	ranked := tally.Entries()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Mentions > ranked[j].Mentions
	})
	return ranked
}
