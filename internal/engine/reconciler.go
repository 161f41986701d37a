package engine

import "CotSignal/internal/domain/models"

// NewsFailure reports whether the sentiment evidence cannot be trusted
// to confirm price direction: it is absent, inconclusive, or
// contradicts the price move. When true, the positioning verdict
// becomes the deciding factor instead of sentiment.
func NewsFailure(sig models.ExternalSignal) bool {
	if sig.NewsArticleCount == 0 {
		return true
	}
	if sig.PriceDirection == models.PriceNeutral {
		return true
	}
	if sig.PriceDirection == models.PriceUp && sig.SentimentLabel == models.SentimentBearish {
		return true
	}
	if sig.PriceDirection == models.PriceDown && sig.SentimentLabel == models.SentimentBullish {
		return true
	}
	return false
}
