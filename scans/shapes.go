package scans

import (
	"encoding/json"
	"math"
	"sort"
	"strings"

	"scanbrief/models"
)

// The scanner has shipped ticker mentions in three shapes over its lifetime:
// an array of [name, count] pairs under "topTickers", a map of name to count
// under "tickers", and a map of category to [{ticker, count}] under
// "tickerMentions". A record may carry any combination; all of them feed the
// same mention tally. Each probe is tolerant: a malformed value under one key
// is ignored rather than dropping the record.

type pairList [][]json.RawMessage

type categorizedMention struct {
	Ticker string  `json:"ticker"`
	Count  float64 `json:"count"`
}

// MentionTally accumulates normalized mention counts, preserving first-seen
// order so that descending sorts stay stable across identical inputs.
type MentionTally struct {
	counts map[string]float64
	order  []string
}

// NewMentionTally returns an empty tally.
func NewMentionTally() *MentionTally {
	return &MentionTally{counts: make(map[string]float64)}
}

// Add normalizes a symbol (leading $ stripped) and adds to its count.
func (t *MentionTally) Add(name string, count float64) {
	name = strings.TrimPrefix(name, "$")
	if name == "" {
		return
	}
	if _, ok := t.counts[name]; !ok {
		t.order = append(t.order, name)
	}
	t.counts[name] += count
}

// Count returns the accumulated count for a symbol.
func (t *MentionTally) Count(name string) float64 {
	return t.counts[strings.TrimPrefix(name, "$")]
}

// Entries returns the tally in first-seen order.
func (t *MentionTally) Entries() []models.TickerCount {
	out := make([]models.TickerCount, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, models.TickerCount{Name: name, Mentions: int(math.Round(t.counts[name]))})
	}
	return out
}

// CollectTickers folds one record's ticker mentions, in all present shapes,
// into the tally.
func CollectTickers(rec models.ScanRecord, tally *MentionTally) {
	collectPairList(rec.TopTickers, tally)
	collectCountMap(rec.Tickers, tally)
	collectCategorized(rec.TickerMentions, tally)
}

func collectPairList(raw json.RawMessage, tally *MentionTally) {
	if len(raw) == 0 {
		return
	}
	var pairs pairList
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return
	}
	for _, pair := range pairs {
		if len(pair) < 2 {
			continue
		}
		var name string
		var count float64
		if json.Unmarshal(pair[0], &name) != nil {
			continue
		}
		if json.Unmarshal(pair[1], &count) != nil {
			continue
		}
		tally.Add(name, count)
	}
}

func collectCountMap(raw json.RawMessage, tally *MentionTally) {
	if len(raw) == 0 {
		return
	}
	var counts map[string]float64
	if err := json.Unmarshal(raw, &counts); err != nil {
		return
	}
	// Map iteration order is random; sort keys so that first-seen order, and
	// with it tie-breaking, is reproducible for a given source.
	for _, name := range sortedKeys(counts) {
		tally.Add(name, counts[name])
	}
}

func collectCategorized(raw json.RawMessage, tally *MentionTally) {
	if len(raw) == 0 {
		return
	}
	var categories map[string][]categorizedMention
	if err := json.Unmarshal(raw, &categories); err != nil {
		return
	}
	for _, category := range sortedKeys(categories) {
		for _, m := range categories[category] {
			tally.Add(m.Ticker, m.Count)
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
