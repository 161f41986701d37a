package usecase

import (
	"context"
	"errors"
	"time"

	"CotSignal/internal/domain/models"
	"CotSignal/internal/session"
	pkgcache "CotSignal/pkg/cache"
)

// ErrSessionNotFound means no state exists for the session id.
var ErrSessionNotFound = errors.New("session not found")

// SessionUsecase persists per-session reducer state in the cache and
// applies user actions to it. State expires with the session TTL; a
// read after expiry starts over from registry defaults.
type SessionUsecase struct {
	series    *SeriesUsecase
	decisions *DecisionUsecase
	cache     pkgcache.Service
	ttl       time.Duration
}

func NewSessionUsecase(series *SeriesUsecase, decisions *DecisionUsecase, cache pkgcache.Service, ttl time.Duration) *SessionUsecase {
	return &SessionUsecase{series: series, decisions: decisions, cache: cache, ttl: ttl}
}

func sessionKey(id string) string {
	return pkgcache.Key("session", id)
}

// Get returns the stored state for id, or a fresh gold session.
func (u *SessionUsecase) Get(ctx context.Context, id string) (session.State, error) {
	var s session.State
	err := u.cache.Get(ctx, sessionKey(id), &s)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pkgcache.ErrCacheMiss) {
		return session.State{}, err
	}
	return session.New(models.CommodityGold)
}

// Apply reduces the stored state by one action and persists the result.
// Reducer errors leave the stored state untouched and are returned to
// the caller for surfacing.
func (u *SessionUsecase) Apply(ctx context.Context, id string, a session.Action) (session.State, error) {
	s, err := u.Get(ctx, id)
	if err != nil {
		return session.State{}, err
	}

	var bounds session.Bounds
	if series, err := u.series.Get(ctx, s.Commodity); err == nil {
		bounds = series
	}

	next, err := session.Apply(s, a, bounds)
	if err != nil {
		return s, err
	}
	if err := u.cache.Set(ctx, sessionKey(id), next, u.ttl); err != nil {
		return s, err
	}
	return next, nil
}

// Decide evaluates the session's selected date under its thresholds
// and mask. The date defaults to the latest record when none selected.
func (u *SessionUsecase) Decide(ctx context.Context, id string) (*models.DecisionOutcome, error) {
	s, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	date := s.SelectedDate
	if date.IsZero() {
		series, err := u.series.Get(ctx, s.Commodity)
		if err != nil {
			return nil, err
		}
		_, last, ok := series.Range()
		if !ok {
			return nil, errors.New("no data loaded")
		}
		date = last
	}
	return u.decisions.Decide(ctx, s.Commodity, date, s.Thresholds, s.Enablement)
}
