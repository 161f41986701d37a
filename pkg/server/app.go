package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	domrepo "CotSignal/internal/domain/repository"
	pkgcache "CotSignal/pkg/cache"
	"CotSignal/pkg/config"
	xhttp "CotSignal/pkg/http"
	pkgkafka "CotSignal/pkg/kafka"
	applogger "CotSignal/pkg/logger"
)

// App encapsulates the application lifecycle: the HTTP server, the
// optional kafka signal consumer, and infrastructure teardown.
type App struct {
	cfg        *config.Config
	l          *applogger.Logger
	handlers   []xhttp.Handler
	consumer   *pkgkafka.Consumer
	kh         pkgkafka.MessageHandler
	source     domrepo.SeriesSource
	cache      pkgcache.Service
	httpServer *xhttp.Server
}

// New creates an App with all dependencies.
func New(
	cfg *config.Config,
	l *applogger.Logger,
	handlers []xhttp.Handler,
	consumer *pkgkafka.Consumer,
	kh pkgkafka.MessageHandler,
	source domrepo.SeriesSource,
	cache pkgcache.Service,
) *App {
	return &App{
		cfg:      cfg,
		l:        l,
		handlers: handlers,
		consumer: consumer,
		kh:       kh,
		source:   source,
		cache:    cache,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := []xhttp.ServerOption{
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	}
	if a.cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetricsPath(a.cfg.Metrics.Path))
	}
	a.httpServer = xhttp.NewServer(a.handlers, opts...)

	if a.consumer != nil && a.kh != nil {
		a.consumer.RegisterHandler(a.kh)
		go func() {
			if err := a.consumer.Start(); err != nil {
				a.l.Error("kafka consumer error", applogger.Error(err))
			}
		}()
		a.l.Info("kafka consumer started", applogger.String("topic", a.kh.Topic()))
	}

	if err := a.httpServer.Start(); err != nil {
		a.l.Error("http server start error", applogger.Error(err))
		return err
	}
	a.l.Info("http server started", applogger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.l.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.l.Error("http shutdown error", applogger.Error(err))
	}

	if a.consumer != nil {
		if err := a.consumer.Stop(shutdownCtx); err != nil {
			a.l.Warn("kafka consumer stop error", applogger.Error(err))
		}
	}

	if a.source != nil {
		if err := a.source.Close(); err != nil {
			a.l.Warn("series source close error", applogger.Error(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.l.Warn("cache close error", applogger.Error(err))
		}
	}

	a.l.Info("shutdown complete")
	return nil
}
