package engine

import (
	"sort"
	"time"

	"CotSignal/internal/domain/models"
	"CotSignal/pkg/util"
)

// Series is an in-memory time-series store for one commodity: daily
// records unique by date, in ascending date order. It is read-only
// after construction.
type Series struct {
	records []models.DailyRecord
}

// NewSeries builds a Series from raw records: sorts ascending by date
// and drops later duplicates of the same date.
func NewSeries(records []models.DailyRecord) *Series {
	sorted := make([]models.DailyRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	deduped := sorted[:0]
	for _, r := range sorted {
		if len(deduped) > 0 && deduped[len(deduped)-1].Date.Equal(r.Date) {
			continue
		}
		deduped = append(deduped, r)
	}

	return &Series{records: deduped}
}

// Len returns the number of records.
func (s *Series) Len() int { return len(s.records) }

// Records returns the ordered records. Callers must not mutate them.
func (s *Series) Records() []models.DailyRecord { return s.records }

// Range returns the first and last dates. ok is false for an empty series.
func (s *Series) Range() (first, last time.Time, ok bool) {
	if len(s.records) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return s.records[0].Date, s.records[len(s.records)-1].Date, true
}

// Contains reports whether target falls inside the known date range.
func (s *Series) Contains(target time.Time) bool {
	first, last, ok := s.Range()
	if !ok {
		return false
	}
	return !target.Before(first) && !target.After(last)
}

// Resolve returns the record whose date is nearest to target.
// The ascending scan replaces the best candidate only on a strictly
// smaller distance, so equidistant ties resolve to the earlier date.
func (s *Series) Resolve(target time.Time) (models.DailyRecord, error) {
	if len(s.records) == 0 {
		return models.DailyRecord{}, ErrNoData
	}

	best := s.records[0]
	bestDist := util.AbsDuration(best.Date, target)
	for _, r := range s.records[1:] {
		if d := util.AbsDuration(r.Date, target); d < bestDist {
			best, bestDist = r, d
		}
	}
	return best, nil
}

// Previous returns the latest record strictly before date.
func (s *Series) Previous(date time.Time) (models.DailyRecord, bool) {
	idx := sort.Search(len(s.records), func(i int) bool {
		return !s.records[i].Date.Before(date)
	})
	if idx == 0 {
		return models.DailyRecord{}, false
	}
	return s.records[idx-1], true
}
