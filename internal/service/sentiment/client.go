package sentiment

import (
	"context"
	"fmt"
	"time"

	"CotSignal/internal/domain/models"
	"CotSignal/internal/service/ratelimit"
	pkghttp "CotSignal/pkg/http"
	applogger "CotSignal/pkg/logger"
)

// Inference is slower than scraping; keep the burst budget tighter.
const (
	limiterKey    = "sentiment"
	limiterBurst  = 5
	limiterRefill = 1
)

// Client calls the external sentiment-inference service.
type Client struct {
	baseURL string
	http    *pkghttp.Client
	limiter *ratelimit.Limiter
	l       *applogger.Logger
}

func New(baseURL string, timeout time.Duration, l *applogger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    pkghttp.NewClient(pkghttp.WithTimeout(timeout)),
		limiter: ratelimit.New(),
		l:       l,
	}
}

type analyzeRequest struct {
	Commodity string               `json:"commodity"`
	Articles  []models.NewsArticle `json:"articles"`
}

// Analyze classifies a batch of articles into one sentiment label with
// a confidence score. An empty batch is classified remotely as neutral;
// callers decide what to do with transport failures.
func (c *Client) Analyze(ctx context.Context, commodity models.Commodity, articles []models.NewsArticle) (models.Sentiment, error) {
	if !c.limiter.Allow(limiterKey, limiterBurst, limiterRefill) {
		return models.Sentiment{}, fmt.Errorf("analyze sentiment: rate limited")
	}

	var out models.Sentiment
	err := c.http.SendAndParse(ctx, &pkghttp.RequestOptions{
		Method: pkghttp.MethodPost,
		URL:    fmt.Sprintf("%s/analyze", c.baseURL),
		Body:   analyzeRequest{Commodity: commodity.String(), Articles: articles},
	}, &out)
	if err != nil {
		if c.l != nil {
			c.l.Warn("sentiment analyze failed",
				applogger.String("commodity", commodity.String()),
				applogger.Int("articles", len(articles)),
				applogger.Error(err),
			)
		}
		return models.Sentiment{}, fmt.Errorf("analyze sentiment: %w", err)
	}
	if out.Label == "" {
		out.Label = models.SentimentNeutral
	}
	return out, nil
}
