package repository

import (
	"context"

	"CotSignal/internal/domain/models"
)

// SeriesSource provides read-only access to a commodity's daily series.
// Implementations must return records deduplicated by date in ascending
// date order.
type SeriesSource interface {
	Series(ctx context.Context, commodity models.Commodity) ([]models.DailyRecord, error)
	Health(ctx context.Context) error
	Close() error
}

// Metrics records operational measurements.
type Metrics interface {
	RecordDecision(commodity, action string)
	RecordError(kind string)
	RecordCacheLookup(hit bool)
	RecordLastClose(commodity string, close float64)
	RecordLatency(op string, seconds float64)
}
