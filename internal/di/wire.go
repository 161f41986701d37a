//go:build wireinject
// +build wireinject

package di

import (
	"CotSignal/pkg/config"
	"CotSignal/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideSeriesSource,
		ProvideCache,
		ProvideNewsProvider,
		ProvideSentimentAnalyzer,

		// Use cases
		ProvideSeriesUsecase,
		ProvideSignalUsecase,
		ProvideDecisionUsecase,
		ProvideSessionUsecase,

		// Transport
		ProvideHandlers,
		ProvideKafkaConsumer,
		ProvideKafkaSignalHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
