package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CotSignal/internal/domain/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rec(date time.Time, close float64) models.DailyRecord {
	return models.DailyRecord{Date: date, Close: &close}
}

func TestNewSeriesSortsAndDedupes(t *testing.T) {
	s := NewSeries([]models.DailyRecord{
		rec(day(2023, 4, 12), 2010),
		rec(day(2023, 4, 10), 2000),
		rec(day(2023, 4, 12), 2099), // duplicate date, later row dropped
		rec(day(2023, 4, 11), 2005),
	})

	require.Equal(t, 3, s.Len())
	records := s.Records()
	assert.Equal(t, day(2023, 4, 10), records[0].Date)
	assert.Equal(t, day(2023, 4, 11), records[1].Date)
	assert.Equal(t, day(2023, 4, 12), records[2].Date)
	assert.Equal(t, 2010.0, *records[2].Close, "first row for a date wins")
}

func TestResolveExactMatch(t *testing.T) {
	s := NewSeries([]models.DailyRecord{
		rec(day(2023, 4, 10), 1),
		rec(day(2023, 4, 11), 2),
		rec(day(2023, 4, 12), 3),
	})

	got, err := s.Resolve(day(2023, 4, 11))
	require.NoError(t, err)
	assert.Equal(t, day(2023, 4, 11), got.Date)
}

func TestResolveNearest(t *testing.T) {
	s := NewSeries([]models.DailyRecord{
		rec(day(2023, 4, 10), 1),
		rec(day(2023, 4, 14), 2),
		rec(day(2023, 4, 20), 3),
	})

	got, err := s.Resolve(day(2023, 4, 16))
	require.NoError(t, err)
	assert.Equal(t, day(2023, 4, 14), got.Date)

	// No record in the store is strictly closer than the returned one.
	dist := got.Date.Sub(day(2023, 4, 16))
	if dist < 0 {
		dist = -dist
	}
	for _, r := range s.Records() {
		d := r.Date.Sub(day(2023, 4, 16))
		if d < 0 {
			d = -d
		}
		assert.GreaterOrEqual(t, d, dist)
	}
}

func TestResolveTieGoesToEarlierDate(t *testing.T) {
	s := NewSeries([]models.DailyRecord{
		rec(day(2023, 4, 10), 1),
		rec(day(2023, 4, 12), 2),
	})

	// 2023-04-11 is equidistant from both records.
	got, err := s.Resolve(day(2023, 4, 11))
	require.NoError(t, err)
	assert.Equal(t, day(2023, 4, 10), got.Date)
}

func TestResolveOutsideRangeClampsToEdge(t *testing.T) {
	s := NewSeries([]models.DailyRecord{
		rec(day(2023, 4, 10), 1),
		rec(day(2023, 4, 12), 2),
	})

	got, err := s.Resolve(day(2020, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, day(2023, 4, 10), got.Date)

	got, err = s.Resolve(day(2030, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, day(2023, 4, 12), got.Date)
}

func TestResolveEmptySeries(t *testing.T) {
	s := NewSeries(nil)
	_, err := s.Resolve(day(2023, 4, 11))
	assert.ErrorIs(t, err, ErrNoData)
}

func TestPrevious(t *testing.T) {
	s := NewSeries([]models.DailyRecord{
		rec(day(2023, 4, 10), 1),
		rec(day(2023, 4, 11), 2),
		rec(day(2023, 4, 12), 3),
	})

	prev, ok := s.Previous(day(2023, 4, 12))
	require.True(t, ok)
	assert.Equal(t, day(2023, 4, 11), prev.Date)

	_, ok = s.Previous(day(2023, 4, 10))
	assert.False(t, ok, "first record has no predecessor")
}

func TestContains(t *testing.T) {
	s := NewSeries([]models.DailyRecord{
		rec(day(2023, 4, 10), 1),
		rec(day(2023, 4, 12), 2),
	})

	assert.True(t, s.Contains(day(2023, 4, 10)))
	assert.True(t, s.Contains(day(2023, 4, 11)))
	assert.True(t, s.Contains(day(2023, 4, 12)))
	assert.False(t, s.Contains(day(2023, 4, 9)))
	assert.False(t, s.Contains(day(2023, 4, 13)))
}
