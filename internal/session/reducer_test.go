package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CotSignal/internal/domain/models"
	"CotSignal/internal/engine"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testBounds(t *testing.T) *engine.Series {
	t.Helper()
	close := 2000.0
	return engine.NewSeries([]models.DailyRecord{
		{Date: day(2023, 4, 10), Close: &close},
		{Date: day(2023, 4, 20), Close: &close},
	})
}

func TestNewLoadsRegistryDefaults(t *testing.T) {
	s, err := New(models.CommodityGold)
	require.NoError(t, err)
	assert.Equal(t, 85.0, s.Thresholds.Long.Commercials)
	assert.Equal(t, models.AllEnabled(), s.Enablement)
	assert.Equal(t, models.PostureLong, s.Posture)
	assert.False(t, s.Edited)

	_, err = New(models.Commodity("tin"))
	assert.ErrorIs(t, err, engine.ErrUnknownCommodity)
}

func TestSelectDate(t *testing.T) {
	s, _ := New(models.CommodityGold)
	b := testBounds(t)

	next, err := Apply(s, Action{Type: ActionSelectDate, Date: "2023-04-15"}, b)
	require.NoError(t, err)
	assert.Equal(t, day(2023, 4, 15), next.SelectedDate)
	assert.Equal(t, s.Revision+1, next.Revision)
}

func TestSelectDateOutOfRangeKeepsPriorSelection(t *testing.T) {
	s, _ := New(models.CommodityGold)
	b := testBounds(t)
	s, err := Apply(s, Action{Type: ActionSelectDate, Date: "2023-04-15"}, b)
	require.NoError(t, err)

	next, err := Apply(s, Action{Type: ActionSelectDate, Date: "2030-01-01"}, b)
	assert.ErrorIs(t, err, ErrDateOutOfRange)
	assert.Equal(t, s, next, "failed action leaves state untouched")
	assert.Equal(t, day(2023, 4, 15), next.SelectedDate)
}

func TestSelectDateUnparseable(t *testing.T) {
	s, _ := New(models.CommodityGold)
	next, err := Apply(s, Action{Type: ActionSelectDate, Date: "not-a-date"}, testBounds(t))
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, s, next)
}

func TestSetThreshold(t *testing.T) {
	s, _ := New(models.CommodityGold)

	next, err := Apply(s, Action{
		Type:    ActionSetThreshold,
		Posture: models.PostureLong,
		Index:   IndexCommercials,
		Value:   "92.5",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 92.5, next.Thresholds.Long.Commercials)
	assert.Equal(t, 5.0, next.Thresholds.Short.Commercials, "short set untouched")
	assert.True(t, next.Edited)
}

func TestSetThresholdCoercesNonNumericToZero(t *testing.T) {
	s, _ := New(models.CommodityGold)

	next, err := Apply(s, Action{
		Type:    ActionSetThreshold,
		Posture: models.PostureShort,
		Index:   IndexLargeSpeculators,
		Value:   "ninety",
	}, nil)
	require.NoError(t, err, "non-numeric input is coerced, not rejected")
	assert.Equal(t, 0.0, next.Thresholds.Short.LargeSpeculators)
	assert.True(t, next.Edited, "coerced entry still counts as an edit")
}

func TestSetThresholdValidation(t *testing.T) {
	s, _ := New(models.CommodityGold)

	_, err := Apply(s, Action{Type: ActionSetThreshold, Posture: "sideways", Index: IndexCommercials, Value: "1"}, nil)
	assert.ErrorIs(t, err, ErrInvalidPosture)

	_, err = Apply(s, Action{Type: ActionSetThreshold, Posture: models.PostureLong, Index: "hedgers", Value: "1"}, nil)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestToggleIndex(t *testing.T) {
	s, _ := New(models.CommodityGold)

	next, err := Apply(s, Action{Type: ActionToggleIndex, Index: IndexSmallSpeculators}, nil)
	require.NoError(t, err)
	assert.False(t, next.Enablement.SmallSpeculators)
	assert.True(t, next.Enablement.Commercials)

	next, err = Apply(next, Action{Type: ActionToggleIndex, Index: IndexSmallSpeculators}, nil)
	require.NoError(t, err)
	assert.True(t, next.Enablement.SmallSpeculators)
}

func TestSetPosture(t *testing.T) {
	s, _ := New(models.CommodityGold)

	next, err := Apply(s, Action{Type: ActionSetPosture, Posture: models.PostureShort}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.PostureShort, next.Posture)
	assert.Equal(t, next.Thresholds.Short, next.ActiveThresholds())

	_, err = Apply(s, Action{Type: ActionSetPosture, Posture: "diagonal"}, nil)
	assert.ErrorIs(t, err, ErrInvalidPosture)
}

func TestLoadDefaultsClearsEdits(t *testing.T) {
	s, _ := New(models.CommodityGold)
	s, err := Apply(s, Action{Type: ActionSetThreshold, Posture: models.PostureLong, Index: IndexCommercials, Value: "50"}, nil)
	require.NoError(t, err)
	require.True(t, s.Edited)

	next, err := Apply(s, Action{Type: ActionLoadDefaults}, nil)
	require.NoError(t, err)
	assert.Equal(t, 85.0, next.Thresholds.Long.Commercials)
	assert.False(t, next.Edited)
}

func TestSetCommodityRevertsThresholdsWhenUnedited(t *testing.T) {
	s, _ := New(models.CommodityGold)

	next, err := Apply(s, Action{Type: ActionSetCommodity, Commodity: models.CommodityCoffee}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.CommodityCoffee, next.Commodity)
	assert.Equal(t, 80.0, next.Thresholds.Long.Commercials, "coffee defaults loaded")
	assert.True(t, next.SelectedDate.IsZero(), "date selection resets with the market")
}

func TestSetCommodityKeepsSessionEdits(t *testing.T) {
	s, _ := New(models.CommodityGold)
	s, err := Apply(s, Action{Type: ActionSetThreshold, Posture: models.PostureLong, Index: IndexCommercials, Value: "42"}, nil)
	require.NoError(t, err)

	next, err := Apply(s, Action{Type: ActionSetCommodity, Commodity: models.CommodityCoffee}, nil)
	require.NoError(t, err)
	assert.Equal(t, 42.0, next.Thresholds.Long.Commercials, "session edits survive the switch")
	assert.True(t, next.Edited)
}

func TestSetCommoditySameKeyIsNoOp(t *testing.T) {
	s, _ := New(models.CommodityGold)
	next, err := Apply(s, Action{Type: ActionSetCommodity, Commodity: models.CommodityGold}, nil)
	require.NoError(t, err)
	assert.Equal(t, s, next)
}

func TestApplyUnknownAction(t *testing.T) {
	s, _ := New(models.CommodityGold)
	next, err := Apply(s, Action{Type: "reticulate"}, nil)
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Equal(t, s, next)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s, _ := New(models.CommodityGold)
	before := s

	_, err := Apply(s, Action{Type: ActionSetThreshold, Posture: models.PostureLong, Index: IndexCommercials, Value: "1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, before, s)
}
