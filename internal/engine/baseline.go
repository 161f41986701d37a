package engine

import "CotSignal/internal/domain/models"

// Baseline is the upstream agreement/reversal classification built from
// price direction and sentiment alone. The arbiter supersedes it
// whenever a BinaryVerdict is available; this remains the fallback
// display value when no positioning data exists at all. Both paths are
// kept separately inspectable.
func Baseline(direction models.PriceDirection, sentiment models.SentimentLabel) models.Decision {
	switch {
	case direction == models.PriceUp && sentiment == models.SentimentBullish:
		return models.Decision{
			Action: models.ActionBuy,
			Reason: "price rose and news sentiment is bullish",
		}
	case direction == models.PriceDown && sentiment == models.SentimentBearish:
		return models.Decision{
			Action: models.ActionSell,
			Reason: "price fell and news sentiment is bearish",
		}
	case direction == models.PriceUp && sentiment == models.SentimentBearish:
		return models.Decision{
			Action: models.ActionBuy,
			Reason: "reversal: price rose despite bearish news",
		}
	case direction == models.PriceDown && sentiment == models.SentimentBullish:
		return models.Decision{
			Action: models.ActionSell,
			Reason: "reversal: price fell despite bullish news",
		}
	default:
		return models.Decision{
			Action: models.ActionHold,
			Reason: "insufficient evidence to call a direction",
		}
	}
}
