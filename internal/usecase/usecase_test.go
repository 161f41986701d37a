package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CotSignal/internal/domain/models"
	pkgcache "CotSignal/pkg/cache"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func f(v float64) *float64 { return &v }

type fakeSource struct {
	records map[models.Commodity][]models.DailyRecord
	err     error
	calls   int
}

func (s *fakeSource) Series(_ context.Context, c models.Commodity) ([]models.DailyRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.records[c], nil
}

func (s *fakeSource) Health(context.Context) error { return nil }
func (s *fakeSource) Close() error                 { return nil }

type fakeNews struct {
	articles []models.NewsArticle
	err      error
	calls    int
}

func (n *fakeNews) FetchArticles(context.Context, models.Commodity, time.Time) ([]models.NewsArticle, error) {
	n.calls++
	return n.articles, n.err
}

type fakeSentiment struct {
	out   models.Sentiment
	err   error
	calls int
}

func (s *fakeSentiment) Analyze(context.Context, models.Commodity, []models.NewsArticle) (models.Sentiment, error) {
	s.calls++
	if s.err != nil {
		return models.Sentiment{}, s.err
	}
	return s.out, nil
}

type nopMetrics struct{}

func (nopMetrics) RecordDecision(string, string) {}
func (nopMetrics) RecordError(string) {}
func (nopMetrics) RecordCacheLookup(bool) {}
func (nopMetrics) RecordLastClose(string, float64) {}
func (nopMetrics) RecordLatency(string, float64) {}

func goldRecords() []models.DailyRecord {
	return []models.DailyRecord{
		{Date: day(2023, 4, 10), Close: f(2000), Commercials: f(50), LargeSpecs: f(50), SmallSpecs: f(50)},
		{Date: day(2023, 4, 11), Close: f(1990), Commercials: f(90), LargeSpecs: f(3), SmallSpecs: f(7)},
	}
}

func articles(n int) []models.NewsArticle {
	out := make([]models.NewsArticle, n)
	for i := range out {
		out[i] = models.NewsArticle{Title: "gold headline", Summary: "summary"}
	}
	return out
}

type fixture struct {
	series    *SeriesUsecase
	signals   *SignalUsecase
	decisions *DecisionUsecase
	news      *fakeNews
	sentiment *fakeSentiment
	cache     pkgcache.Service
}

func newFixture(t *testing.T, source *fakeSource, news *fakeNews, sent *fakeSentiment) *fixture {
	t.Helper()
	c := pkgcache.NewMemoryCache()
	t.Cleanup(func() { _ = c.Close() })

	series := NewSeriesUsecase(source)
	signals := NewSignalUsecase(series, news, sent, c, nopMetrics{}, nil, time.Minute)
	decisions := NewDecisionUsecase(series, signals, nopMetrics{}, nil)
	return &fixture{series: series, signals: signals, decisions: decisions, news: news, sentiment: sent, cache: c}
}

func TestSignalBuild(t *testing.T) {
	fx := newFixture(t,
		&fakeSource{records: map[models.Commodity][]models.DailyRecord{models.CommodityGold: goldRecords()}},
		&fakeNews{articles: articles(4)},
		&fakeSentiment{out: models.Sentiment{Label: models.SentimentBullish, Score: 0.8}},
	)

	sig, err := fx.signals.Build(context.Background(), models.CommodityGold, day(2023, 4, 11))
	require.NoError(t, err)
	assert.Equal(t, 1990.0, sig.Price)
	assert.Equal(t, 2000.0, sig.PreviousPrice)
	assert.Equal(t, -10.0, sig.PriceChange)
	assert.Equal(t, models.PriceDown, sig.PriceDirection)
	assert.Equal(t, models.SentimentBullish, sig.SentimentLabel)
	assert.Equal(t, 4, sig.NewsArticleCount)
	assert.Equal(t, models.ActionSell, sig.BaselineAction, "down+bullish is a sell reversal")
}

func TestSignalBuildCachesResult(t *testing.T) {
	fx := newFixture(t,
		&fakeSource{records: map[models.Commodity][]models.DailyRecord{models.CommodityGold: goldRecords()}},
		&fakeNews{articles: articles(2)},
		&fakeSentiment{out: models.Sentiment{Label: models.SentimentBullish}},
	)

	_, err := fx.signals.Build(context.Background(), models.CommodityGold, day(2023, 4, 11))
	require.NoError(t, err)
	_, err = fx.signals.Build(context.Background(), models.CommodityGold, day(2023, 4, 11))
	require.NoError(t, err)
	assert.Equal(t, 1, fx.news.calls, "second build served from cache")
}

func TestSignalBuildNewsFailureDegrades(t *testing.T) {
	fx := newFixture(t,
		&fakeSource{records: map[models.Commodity][]models.DailyRecord{models.CommodityGold: goldRecords()}},
		&fakeNews{err: errors.New("scraper down")},
		&fakeSentiment{out: models.Sentiment{Label: models.SentimentBullish}},
	)

	sig, err := fx.signals.Build(context.Background(), models.CommodityGold, day(2023, 4, 11))
	require.NoError(t, err, "news failure is not a signal failure")
	assert.Equal(t, 0, sig.NewsArticleCount)
	assert.Equal(t, models.SentimentNeutral, sig.SentimentLabel)
	assert.Equal(t, 0, fx.sentiment.calls, "no articles, no sentiment call")
	assert.Equal(t, models.ActionHold, sig.BaselineAction)
}

func TestSignalBuildSentimentFailureDegradesToNeutral(t *testing.T) {
	fx := newFixture(t,
		&fakeSource{records: map[models.Commodity][]models.DailyRecord{models.CommodityGold: goldRecords()}},
		&fakeNews{articles: articles(3)},
		&fakeSentiment{err: errors.New("model overloaded")},
	)

	sig, err := fx.signals.Build(context.Background(), models.CommodityGold, day(2023, 4, 11))
	require.NoError(t, err)
	assert.Equal(t, models.SentimentNeutral, sig.SentimentLabel)
	assert.Equal(t, 0.0, sig.SentimentScore)
	assert.Equal(t, 3, sig.NewsArticleCount)
}

func TestDecideEngineSource(t *testing.T) {
	fx := newFixture(t,
		&fakeSource{records: map[models.Commodity][]models.DailyRecord{models.CommodityGold: goldRecords()}},
		&fakeNews{articles: articles(4)},
		&fakeSentiment{out: models.Sentiment{Label: models.SentimentBullish, Score: 0.9}},
	)

	pair := models.ThresholdPair{
		Long:  models.ThresholdSet{Commercials: 85, LargeSpeculators: 5, SmallSpeculators: 10},
		Short: models.ThresholdSet{Commercials: 5, LargeSpeculators: 95, SmallSpeculators: 90},
	}
	out, err := fx.decisions.Decide(context.Background(), models.CommodityGold, day(2023, 4, 11), pair, models.AllEnabled())
	require.NoError(t, err)

	assert.Equal(t, models.VerdictTrue, out.Verdict.Long)
	require.NotNil(t, out.NewsFailure)
	assert.True(t, *out.NewsFailure, "price down vs bullish news")
	assert.Equal(t, models.SourceEngine, out.Source)
	assert.Equal(t, models.ActionBuy, out.Display.Action, "long confirmation overrides unreliable news")
	require.NotNil(t, out.Baseline)
	assert.Equal(t, models.ActionSell, out.Baseline.Action, "baseline path stays inspectable")
}

func TestDecideBaselineSourceWhenIndicesAbsent(t *testing.T) {
	records := []models.DailyRecord{
		{Date: day(2023, 4, 10), Close: f(2000)},
		{Date: day(2023, 4, 11), Close: f(2010), Commercials: f(90)},
	}
	fx := newFixture(t,
		&fakeSource{records: map[models.Commodity][]models.DailyRecord{models.CommodityGold: records}},
		&fakeNews{articles: articles(2)},
		&fakeSentiment{out: models.Sentiment{Label: models.SentimentBullish}},
	)

	out, err := fx.decisions.DecideDefault(context.Background(), models.CommodityGold, day(2023, 4, 11))
	require.NoError(t, err)
	assert.Equal(t, models.VerdictUnknown, out.Verdict.Long)
	assert.Equal(t, models.SourceBaseline, out.Source)
	assert.Nil(t, out.Engine)
	assert.Equal(t, models.ActionBuy, out.Display.Action, "up+bullish baseline")
}

func TestDecideNoData(t *testing.T) {
	fx := newFixture(t,
		&fakeSource{records: map[models.Commodity][]models.DailyRecord{}},
		&fakeNews{}, &fakeSentiment{},
	)
	_, err := fx.decisions.DecideDefault(context.Background(), models.CommodityGold, day(2023, 4, 11))
	assert.Error(t, err)
}

func TestSeriesMemoization(t *testing.T) {
	source := &fakeSource{records: map[models.Commodity][]models.DailyRecord{models.CommodityGold: goldRecords()}}
	series := NewSeriesUsecase(source)

	_, err := series.Get(context.Background(), models.CommodityGold)
	require.NoError(t, err)
	_, err = series.Get(context.Background(), models.CommodityGold)
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)

	series.Reload(models.CommodityGold)
	_, err = series.Get(context.Background(), models.CommodityGold)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestSeriesRejectsUnknownCommodity(t *testing.T) {
	series := NewSeriesUsecase(&fakeSource{})
	_, err := series.Get(context.Background(), models.Commodity("plutonium"))
	assert.Error(t, err)
}
