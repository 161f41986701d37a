package usecase

import (
	"context"
	"sync"

	"CotSignal/internal/domain/models"
	domrepo "CotSignal/internal/domain/repository"
	"CotSignal/internal/engine"
)

// SeriesUsecase loads commodity series from the configured source and
// memoizes them. Series are read-only after load; Reload discards the
// memoized copy so the next read hits the source again.
type SeriesUsecase struct {
	source domrepo.SeriesSource

	mu     sync.RWMutex
	loaded map[models.Commodity]*engine.Series
}

func NewSeriesUsecase(source domrepo.SeriesSource) *SeriesUsecase {
	return &SeriesUsecase{
		source: source,
		loaded: make(map[models.Commodity]*engine.Series),
	}
}

func (u *SeriesUsecase) Get(ctx context.Context, c models.Commodity) (*engine.Series, error) {
	if !c.IsValid() {
		return nil, engine.ErrUnknownCommodity
	}

	u.mu.RLock()
	s, ok := u.loaded[c]
	u.mu.RUnlock()
	if ok {
		return s, nil
	}

	records, err := u.source.Series(ctx, c)
	if err != nil {
		return nil, err
	}
	s = engine.NewSeries(records)

	u.mu.Lock()
	u.loaded[c] = s
	u.mu.Unlock()
	return s, nil
}

// Reload drops the memoized series for one commodity.
func (u *SeriesUsecase) Reload(c models.Commodity) {
	u.mu.Lock()
	delete(u.loaded, c)
	u.mu.Unlock()
}

func (u *SeriesUsecase) Health(ctx context.Context) error {
	return u.source.Health(ctx)
}
