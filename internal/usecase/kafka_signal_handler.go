package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"CotSignal/internal/domain/models"
	domrepo "CotSignal/internal/domain/repository"
	"CotSignal/internal/engine"
	pkgcache "CotSignal/pkg/cache"
	pkgkafka "CotSignal/pkg/kafka"
	"CotSignal/pkg/util"
)

// KafkaSignalHandler consumes precomputed external signals published by
// the collaborator pipeline and warms the signal cache with them, so
// interactive requests skip the news and sentiment round-trips.
type KafkaSignalHandler struct {
	topic   string
	cache   pkgcache.Service
	metrics domrepo.Metrics
	ttl     time.Duration
}

func NewKafkaSignalHandler(topic string, cache pkgcache.Service, metrics domrepo.Metrics, ttl time.Duration) *KafkaSignalHandler {
	return &KafkaSignalHandler{topic: topic, cache: cache, metrics: metrics, ttl: ttl}
}

func (h *KafkaSignalHandler) Topic() string { return h.topic }

// incoming message schema: {commodity, date, price, previous_price,
// price_direction, news_sentiment, sentiment_score, news_count}
func (h *KafkaSignalHandler) Handle(ctx context.Context, b []byte) error {
	var m struct {
		Commodity string `json:"commodity"`
		Date      string `json:"date"`
		models.ExternalSignal
	}
	if err := json.Unmarshal(b, &m); err != nil {
		h.metrics.RecordError("consumer_unmarshal")
		return err
	}

	c := models.Commodity(m.Commodity)
	if !c.IsValid() {
		h.metrics.RecordError("consumer_commodity")
		return fmt.Errorf("unsupported commodity %q", m.Commodity)
	}
	date, ok := util.ParseDate(m.Date)
	if !ok {
		h.metrics.RecordError("consumer_date")
		return fmt.Errorf("unparseable date %q", m.Date)
	}

	sig := m.ExternalSignal
	sig.Date = util.Day(date)
	if sig.BaselineAction == "" {
		d := engine.Baseline(sig.PriceDirection, sig.SentimentLabel)
		sig.BaselineAction = d.Action
		sig.Reason = d.Reason
	}

	if err := h.cache.Set(ctx, SignalKey(c, date), &sig, h.ttl); err != nil {
		h.metrics.RecordError("consumer_cache_set")
		return err
	}
	return nil
}

var _ pkgkafka.MessageHandler = (*KafkaSignalHandler)(nil)
