package newsfeed

import (
	"context"
	"fmt"
	"time"

	"CotSignal/internal/domain/models"
	"CotSignal/internal/service/ratelimit"
	pkghttp "CotSignal/pkg/http"
	applogger "CotSignal/pkg/logger"
	"CotSignal/pkg/util"
)

// Burst budget against the news service: 10 requests, refilled at 2/s.
const (
	limiterKey    = "newsfeed"
	limiterBurst  = 10
	limiterRefill = 2
)

// Client fetches dated news articles from the external news service.
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

type articlesResponse struct {
	Articles []models.NewsArticle `json:"articles"`
}

// FetchArticles returns the articles published for a commodity on the
// requested date. The date is passed in ISO form; the remote service
// owns the actual scraping.
func (c *Client) FetchArticles(ctx context.Context, commodity models.Commodity, date time.Time) ([]models.NewsArticle, error) {
	if !c.limiter.Allow(limiterKey, limiterBurst, limiterRefill) {
		return nil, fmt.Errorf("fetch articles: rate limited")
	}

	var resp articlesResponse
	err := c.http.SendAndParse(ctx, &pkghttp.RequestOptions{
		Method: pkghttp.MethodGet,
		URL:    fmt.Sprintf("%s/articles", c.baseURL),
		QueryParams: map[string]string{
			"commodity": commodity.String(),
			"date":      util.FormatDate(date),
		},
	}, &resp)
	if err != nil {
		if c.l != nil {
			c.l.Warn("news fetch failed",
				applogger.String("commodity", commodity.String()),
				applogger.String("date", util.FormatDate(date)),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("fetch articles: %w", err)
	}
	return resp.Articles, nil
}
