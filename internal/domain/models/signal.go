package models

import "time"

// PriceDirection is the day-over-day close movement.
type PriceDirection string

const (
	PriceUp      PriceDirection = "up"
	PriceDown    PriceDirection = "down"
	PriceNeutral PriceDirection = "neutral"
)

// SentimentLabel is the externally produced news sentiment class.
type SentimentLabel string

const (
	SentimentBullish SentimentLabel = "bullish"
	SentimentBearish SentimentLabel = "bearish"
	SentimentNeutral SentimentLabel = "neutral"
)

// Sentiment is the output of the external sentiment collaborator.
type Sentiment struct {
	Label SentimentLabel `json:"sentiment"`
	Score float64        `json:"score"`
}

// NewsArticle is one article returned by the news collaborator.
type NewsArticle struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	URL         string    `json:"url,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

// ExternalSignal is the price/sentiment evidence for one date.
// It is immutable once produced.
type ExternalSignal struct {
	Date             time.Time      `json:"-"`
	Price            float64        `json:"price"`
	PreviousPrice    float64        `json:"previous_price"`
	PriceChange      float64        `json:"price_change"`
	PriceDirection   PriceDirection `json:"price_direction"`
	SentimentLabel   SentimentLabel `json:"news_sentiment"`
	SentimentScore   float64        `json:"sentiment_score"`
	NewsArticleCount int            `json:"news_count"`
	BaselineAction   Action         `json:"signal"`
	Reason           string         `json:"reason"`
}
