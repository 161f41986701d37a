package di

import (
	"context"
	"fmt"
	"time"

	domrepo "CotSignal/internal/domain/repository"
	domsvc "CotSignal/internal/domain/service"
	"CotSignal/internal/engine"
	"CotSignal/internal/handler/api"
	internalrepo "CotSignal/internal/repository"
	"CotSignal/internal/service/newsfeed"
	"CotSignal/internal/service/sentiment"
	"CotSignal/internal/usecase"
	pkgcache "CotSignal/pkg/cache"
	pkgch "CotSignal/pkg/clickhouse"
	"CotSignal/pkg/config"
	xhttp "CotSignal/pkg/http"
	pkgkafka "CotSignal/pkg/kafka"
	applogger "CotSignal/pkg/logger"
	"CotSignal/pkg/metrics"
	"CotSignal/pkg/server"
	"CotSignal/pkg/util"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideSeriesSource creates the configured series backend.
func ProvideSeriesSource(cfg *config.Config, l *applogger.Logger) (domrepo.SeriesSource, error) {
	switch cfg.Data.Backend {
	case "csv", "":
		var start time.Time
		if cfg.Data.StartDate != "" {
			parsed, ok := util.ParseDate(cfg.Data.StartDate)
			if !ok {
				return nil, fmt.Errorf("data.start_date: unparseable %q", cfg.Data.StartDate)
			}
			start = parsed
		}
		store := internalrepo.NewCSVSeriesStore(cfg.Data.Dir, start)
		store.SetLogger(l)
		return store, nil

	case "clickhouse":
		client, err := pkgch.NewClient(
			pkgch.WithHost(cfg.ClickHouse.Host),
			pkgch.WithPort(cfg.ClickHouse.Port),
			pkgch.WithDatabase(cfg.ClickHouse.Database),
			pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
			pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
			pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
			pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
			pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
		)
		if err != nil {
			return nil, fmt.Errorf("clickhouse client: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.InitSchema(ctx, internalrepo.SchemaStatements()); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("clickhouse schema: %w", err)
		}

		store := internalrepo.NewCHSeriesStore(client)
		store.SetLogger(l)
		return store, nil

	default:
		return nil, fmt.Errorf("unsupported data backend %q", cfg.Data.Backend)
	}
}

// ProvideCache creates the layered cache. Redis is the optional second
// layer; without it the memory layer serves alone.
func ProvideCache(cfg *config.Config) (pkgcache.Service, error) {
	var redis *pkgcache.RedisCache
	if cfg.Cache.Redis.Enabled {
		var err error
		redis, err = pkgcache.NewRedisCache(
			pkgcache.WithRedisAddr(cfg.Cache.Redis.Addr),
			pkgcache.WithRedisAuth(cfg.Cache.Redis.Password, cfg.Cache.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
	}
	return pkgcache.NewLayeredCache(redis, pkgcache.WithLayeredMemorySize(cfg.Cache.MemoryMax)), nil
}

// ProvideNewsProvider creates the news collaborator client.
func ProvideNewsProvider(cfg *config.Config, l *applogger.Logger) domsvc.NewsProvider {
	return newsfeed.New(cfg.Collaborators.NewsServiceURL, cfg.Collaborators.Timeout, l)
}

// ProvideSentimentAnalyzer creates the sentiment collaborator client.
func ProvideSentimentAnalyzer(cfg *config.Config, l *applogger.Logger) domsvc.SentimentAnalyzer {
	return sentiment.New(cfg.Collaborators.SentimentServiceURL, cfg.Collaborators.Timeout, l)
}

// ProvideSeriesUsecase creates the memoizing series loader.
func ProvideSeriesUsecase(source domrepo.SeriesSource) *usecase.SeriesUsecase {
	return usecase.NewSeriesUsecase(source)
}

// ProvideSignalUsecase creates the signal builder.
func ProvideSignalUsecase(
	series *usecase.SeriesUsecase,
	news domsvc.NewsProvider,
	analyzer domsvc.SentimentAnalyzer,
	cache pkgcache.Service,
	m domrepo.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.SignalUsecase {
	return usecase.NewSignalUsecase(series, news, analyzer, cache, m, l, cfg.Cache.SignalTTL)
}

// ProvideDecisionUsecase creates the decision pipeline.
func ProvideDecisionUsecase(series *usecase.SeriesUsecase, signals *usecase.SignalUsecase, m domrepo.Metrics, l *applogger.Logger) *usecase.DecisionUsecase {
	return usecase.NewDecisionUsecase(series, signals, m, l)
}

// ProvideSessionUsecase creates the session store.
func ProvideSessionUsecase(series *usecase.SeriesUsecase, decisions *usecase.DecisionUsecase, cache pkgcache.Service, cfg *config.Config) *usecase.SessionUsecase {
	return usecase.NewSessionUsecase(series, decisions, cache, cfg.Cache.SessionTTL)
}

// ProvideHandlers assembles every HTTP handler.
func ProvideHandlers(
	l *applogger.Logger,
	series *usecase.SeriesUsecase,
	signals *usecase.SignalUsecase,
	decisions *usecase.DecisionUsecase,
	sessions *usecase.SessionUsecase,
) []xhttp.Handler {
	return []xhttp.Handler{
		api.NewMarketsHandler(l, series, signals, decisions),
		api.NewSessionsHandler(l, sessions),
		api.NewHealthHandler(series),
	}
}

// ProvideKafkaConsumer creates the signal-ingest consumer, or nil when
// kafka is disabled.
func ProvideKafkaConsumer(cfg *config.Config) (*pkgkafka.Consumer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	consumer, err := pkgkafka.NewConsumer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithGroupID(cfg.Kafka.Consumer.GroupID),
		pkgkafka.WithWorkers(cfg.Kafka.Consumer.Workers),
		pkgkafka.WithBufferSize(cfg.Kafka.Consumer.BufferSize),
		pkgkafka.WithRetry(cfg.Kafka.Consumer.RetryMax, cfg.Kafka.Consumer.BackoffMin, cfg.Kafka.Consumer.BackoffMax),
		pkgkafka.WithDLQ(cfg.Kafka.Consumer.DLQTopic),
		pkgkafka.WithFetch(cfg.Kafka.Consumer.MinBytes, cfg.Kafka.Consumer.MaxBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return consumer, nil
}

// ProvideKafkaSignalHandler creates the cache-warming message handler.
func ProvideKafkaSignalHandler(cache pkgcache.Service, m domrepo.Metrics, cfg *config.Config) *usecase.KafkaSignalHandler {
	return usecase.NewKafkaSignalHandler(cfg.Kafka.Topic, cache, m, cfg.Cache.SignalTTL)
}

// ProvideApp creates the application server. The threshold registry is
// validated here so a bad build fails before serving.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handlers []xhttp.Handler,
	consumer *pkgkafka.Consumer,
	kh *usecase.KafkaSignalHandler,
	source domrepo.SeriesSource,
	cache pkgcache.Service,
) (*server.App, error) {
	if err := engine.ValidateRegistry(); err != nil {
		return nil, err
	}
	return server.New(cfg, l, handlers, consumer, kh, source, cache), nil
}
