package analysis

import "scanbrief/models"

// Regime maps a bull:bear ratio to a discrete sentiment regime.
func Regime(ratio float64) string {
	switch {
	case ratio >= 4:
		return "EUPHORIA"
	case ratio >= 2.5:
		return "BULLISH"
	case ratio >= 1.5:
		return "LEANING BULL"
	case ratio >= 0.7:
		return "NEUTRAL"
	case ratio >= 0.4:
		return "LEANING BEAR"
	default:
		return "BEARISH"
	}
}

// FearGauge classifies precious-metal mention volume. Thresholds are strict:
// exactly 50 gold+silver mentions is still HIGH.
func FearGauge(commodities []models.TickerCount) string {
	total := goldSilverMentions(commodities)
	switch {
	case total > 50:
		return "EXTREME"
	case total > 30:
		return "HIGH"
	case total > 15:
		return "ELEVATED"
	case total > 5:
		return "MODERATE"
	default:
		return "LOW"
	}
}

// GoldSilverMentions is the raw input to the fear gauge, exposed for the
// narrower fear endpoint.
func GoldSilverMentions(commodities []models.TickerCount) int {
	return goldSilverMentions(commodities)
}

func goldSilverMentions(commodities []models.TickerCount) int {
	var total int
	for _, c := range commodities {
		if c.Name == "gold" || c.Name == "silver" {
			total += c.Mentions
		}
	}
	return total
}
