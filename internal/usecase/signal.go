package usecase

import (
	"context"
	"time"

	"CotSignal/internal/domain/models"
	domrepo "CotSignal/internal/domain/repository"
	domsvc "CotSignal/internal/domain/service"
	"CotSignal/internal/engine"
	pkgcache "CotSignal/pkg/cache"
	applogger "CotSignal/pkg/logger"
	"CotSignal/pkg/util"
)

// SignalUsecase builds the external price/sentiment signal for one
// commodity and date. Collaborator failures degrade rather than fail:
// a news fetch error yields an empty article set, a sentiment error
// yields a neutral label with zero score.
type SignalUsecase struct {
	series    *SeriesUsecase
	news      domsvc.NewsProvider
	sentiment domsvc.SentimentAnalyzer
	cache     pkgcache.Service
	metrics   domrepo.Metrics
	l         *applogger.Logger
	ttl       time.Duration
}

func NewSignalUsecase(
	series *SeriesUsecase,
	news domsvc.NewsProvider,
	sentiment domsvc.SentimentAnalyzer,
	cache pkgcache.Service,
	metrics domrepo.Metrics,
	l *applogger.Logger,
	ttl time.Duration,
) *SignalUsecase {
	return &SignalUsecase{
		series:    series,
		news:      news,
		sentiment: sentiment,
		cache:     cache,
		metrics:   metrics,
		l:         l,
		ttl:       ttl,
	}
}

// SignalKey is the cache key for one commodity/date signal.
func SignalKey(c models.Commodity, date time.Time) string {
	return pkgcache.Key("signal", c.String(), util.FormatDate(date))
}

// Build returns the ExternalSignal for the record nearest to date.
// Cached signals are served as-is; news is always fetched for the
// requested date, not the resolved record date.
func (u *SignalUsecase) Build(ctx context.Context, c models.Commodity, date time.Time) (*models.ExternalSignal, error) {
	start := time.Now()
	key := SignalKey(c, date)

	var cached models.ExternalSignal
	if err := u.cache.Get(ctx, key, &cached); err == nil {
		u.metrics.RecordCacheLookup(true)
		cached.Date = util.Day(date)
		return &cached, nil
	}
	u.metrics.RecordCacheLookup(false)

	series, err := u.series.Get(ctx, c)
	if err != nil {
		u.metrics.RecordError("series_load")
		return nil, err
	}
	record, err := series.Resolve(util.Day(date))
	if err != nil {
		u.metrics.RecordError("no_data")
		return nil, err
	}

	sig := &models.ExternalSignal{
		Date:           record.Date,
		PriceDirection: models.PriceNeutral,
	}
	if record.Close != nil {
		sig.Price = *record.Close
		u.metrics.RecordLastClose(c.String(), *record.Close)
	}
	if prev, ok := series.Previous(record.Date); ok && record.Close != nil && prev.Close != nil {
		sig.PreviousPrice = *prev.Close
		sig.PriceChange = *record.Close - *prev.Close
		switch {
		case sig.PriceChange > 0:
			sig.PriceDirection = models.PriceUp
		case sig.PriceChange < 0:
			sig.PriceDirection = models.PriceDown
		}
	}

	articles, err := u.news.FetchArticles(ctx, c, util.Day(date))
	if err != nil {
		u.metrics.RecordError("news_fetch")
		articles = nil
	}
	sig.NewsArticleCount = len(articles)

	sent := models.Sentiment{Label: models.SentimentNeutral}
	if len(articles) > 0 {
		if got, err := u.sentiment.Analyze(ctx, c, articles); err != nil {
			u.metrics.RecordError("sentiment_analyze")
		} else {
			sent = got
		}
	}
	sig.SentimentLabel = sent.Label
	sig.SentimentScore = sent.Score

	baseline := engine.Baseline(sig.PriceDirection, sig.SentimentLabel)
	sig.BaselineAction = baseline.Action
	sig.Reason = baseline.Reason

	if err := u.cache.Set(ctx, key, sig, u.ttl); err != nil && u.l != nil {
		u.l.Warn("signal cache set failed", applogger.String("key", key), applogger.Error(err))
	}
	u.metrics.RecordLatency("signal_build", time.Since(start).Seconds())
	return sig, nil
}

// Articles fetches the raw article list for one date. Unlike Build,
// a fetch failure here degrades to an empty list, never an error.
func (u *SignalUsecase) Articles(ctx context.Context, c models.Commodity, date time.Time) []models.NewsArticle {
	articles, err := u.news.FetchArticles(ctx, c, util.Day(date))
	if err != nil {
		u.metrics.RecordError("news_fetch")
		return []models.NewsArticle{}
	}
	return articles
}
