package service

import (
	"context"
	"time"

	"CotSignal/internal/domain/models"
)

// NewsProvider fetches articles for a commodity and date. It stands in
// for the external news-scraping pipeline.
type NewsProvider interface {
	FetchArticles(ctx context.Context, commodity models.Commodity, date time.Time) ([]models.NewsArticle, error)
}

// SentimentAnalyzer classifies a batch of articles. It stands in for the
// external sentiment-inference model; the engine only consumes its label
// and score.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, commodity models.Commodity, articles []models.NewsArticle) (models.Sentiment, error)
}
