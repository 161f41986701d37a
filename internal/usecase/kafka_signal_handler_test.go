package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CotSignal/internal/domain/models"
	pkgcache "CotSignal/pkg/cache"
)

func TestKafkaSignalHandlerWarmsCache(t *testing.T) {
	c := pkgcache.NewMemoryCache()
	t.Cleanup(func() { _ = c.Close() })
	h := NewKafkaSignalHandler("signals", c, nopMetrics{}, time.Hour)

	msg := []byte(`{
        "commodity": "gold",
        "date": "2023-04-11",
        "price": 1990,
        "previous_price": 2000,
        "price_change": -10,
        "price_direction": "down",
        "news_sentiment": "bullish",
        "sentiment_score": 0.8,
        "news_count": 4
    }`)
	require.NoError(t, h.Handle(context.Background(), msg))

	var sig models.ExternalSignal
	err := c.Get(context.Background(), SignalKey(models.CommodityGold, day(2023, 4, 11)), &sig)
	require.NoError(t, err)
	assert.Equal(t, models.PriceDown, sig.PriceDirection)
	assert.Equal(t, models.ActionSell, sig.BaselineAction, "baseline filled in when absent")
}

func TestKafkaSignalHandlerRejectsBadMessages(t *testing.T) {
	c := pkgcache.NewMemoryCache()
	t.Cleanup(func() { _ = c.Close() })
	h := NewKafkaSignalHandler("signals", c, nopMetrics{}, time.Hour)

	assert.Error(t, h.Handle(context.Background(), []byte(`{not json`)))
	assert.Error(t, h.Handle(context.Background(), []byte(`{"commodity":"tin","date":"2023-04-11"}`)))
	assert.Error(t, h.Handle(context.Background(), []byte(`{"commodity":"gold","date":"soon"}`)))
}

func TestKafkaSignalHandlerTopic(t *testing.T) {
	h := NewKafkaSignalHandler("signals", nil, nopMetrics{}, time.Hour)
	assert.Equal(t, "signals", h.Topic())
}
