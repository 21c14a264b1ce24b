package models

import "encoding/json"

// ScanRecord is one snapshot produced by the external social-media scanner.
// The three ticker-mention keys are kept raw because upstream emits them in
// divergent shapes; the scans package normalizes them.
type ScanRecord struct {
	Timestamp string          `json:"timestamp,omitempty"`
	Sentiment *SentimentScore `json:"sentiment,omitempty"`

	TopTickers     json.RawMessage `json:"topTickers,omitempty"`
	Tickers        json.RawMessage `json:"tickers,omitempty"`
	TickerMentions json.RawMessage `json:"tickerMentions,omitempty"`

	KeywordMentions map[string]map[string]float64 `json:"keywordMentions,omitempty"`
	HighEngagement  []Post                        `json:"highEngagement,omitempty"`
	Tweets          []Tweet                       `json:"tweets,omitempty"`

	// TS is the record timestamp in milliseconds since epoch, derived at
	// load time. 0 when the timestamp is absent or unparseable.
	TS int64 `json:"_ts"`
}

// SentimentScore carries the scanner's per-snapshot bullish/bearish scores.
type SentimentScore struct {
	Bullish float64 `json:"bullish"`
	Bearish float64 `json:"bearish"`
}

// Tweet is a raw post as emitted by the scanner. Older scans use "author",
// newer ones "username".
type Tweet struct {
	Username string  `json:"username,omitempty"`
	Author   string  `json:"author,omitempty"`
	Likes    float64 `json:"likes"`
	Text     string  `json:"text"`
	URL      string  `json:"url"`
}

// Post is the common high-engagement post shape.
type Post struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
	Text   string `json:"text"`
	URL    string `json:"url"`
}

// TickerCount is one ranked mention entry. Commodities reuse the same shape.
type TickerCount struct {
	Name     string `json:"name"`
	Mentions int    `json:"mentions"`
}

// SentimentSummary is the aggregated sentiment block of a brief. Ratio is 0
// when bearish scores are absent; RatioText renders the unbounded case.
type SentimentSummary struct {
	Bull      float64 `json:"bull"`
	Bear      float64 `json:"bear"`
	Ratio     float64 `json:"ratio"`
	RatioText string  `json:"ratioText"`
	Trend     string  `json:"trend"`
}

// TickerMomentum compares a ticker's per-scan mention rate between the two
// halves of the window.
type TickerMomentum struct {
	Name       string  `json:"name"`
	FirstRate  float64 `json:"firstRate"`
	SecondRate float64 `json:"secondRate"`
	Change     int     `json:"change"`
	Label      string  `json:"label"`
}

// Narrative is a qualitative pattern flagged from aggregate signals.
type Narrative struct {
	Type     string `json:"type"`
	Label    string `json:"label"`
	Strength int    `json:"strength"`
}

// Brief is the full intelligence brief assembled per request.
type Brief struct {
	GeneratedAt string           `json:"generatedAt"`
	WindowHours int              `json:"windowHours"`
	ScanCount   int              `json:"scanCount"`
	Sentiment   SentimentSummary `json:"sentiment"`
	Regime      string           `json:"regime"`
	Tickers     []TickerCount    `json:"tickers"`
	Momentum    []TickerMomentum `json:"momentum"`
	Commodities []TickerCount    `json:"commodities"`
	FearGauge   string           `json:"fearGauge"`
	Narratives  []Narrative      `json:"narratives"`
	TopPosts    []Post           `json:"topPosts"`
}
