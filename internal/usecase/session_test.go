package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CotSignal/internal/domain/models"
	"CotSignal/internal/session"
	pkgcache "CotSignal/pkg/cache"
)

func newSessionFixture(t *testing.T) (*SessionUsecase, *fixture) {
	t.Helper()
	fx := newFixture(t,
		&fakeSource{records: map[models.Commodity][]models.DailyRecord{models.CommodityGold: goldRecords()}},
		&fakeNews{articles: articles(4)},
		&fakeSentiment{out: models.Sentiment{Label: models.SentimentBullish, Score: 0.9}},
	)
	c := pkgcache.NewMemoryCache()
	t.Cleanup(func() { _ = c.Close() })
	return NewSessionUsecase(fx.series, fx.decisions, c, time.Hour), fx
}

func TestSessionGetDefaultsToFreshGoldState(t *testing.T) {
	u, _ := newSessionFixture(t)

	s, err := u.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, models.CommodityGold, s.Commodity)
	assert.False(t, s.Edited)
}

func TestSessionApplyPersists(t *testing.T) {
	u, _ := newSessionFixture(t)
	ctx := context.Background()

	next, err := u.Apply(ctx, "abc", session.Action{Type: session.ActionSelectDate, Date: "2023-04-11"})
	require.NoError(t, err)
	assert.Equal(t, day(2023, 4, 11), next.SelectedDate)

	got, err := u.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, next, got)
}

func TestSessionApplyRejectedActionKeepsStoredState(t *testing.T) {
	u, _ := newSessionFixture(t)
	ctx := context.Background()

	_, err := u.Apply(ctx, "abc", session.Action{Type: session.ActionSelectDate, Date: "2030-01-01"})
	assert.ErrorIs(t, err, session.ErrDateOutOfRange)

	got, err := u.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, got.SelectedDate.IsZero(), "rejected selection not persisted")
}

func TestSessionDecideUsesSessionState(t *testing.T) {
	u, _ := newSessionFixture(t)
	ctx := context.Background()

	_, err := u.Apply(ctx, "abc", session.Action{Type: session.ActionSelectDate, Date: "2023-04-11"})
	require.NoError(t, err)

	out, err := u.Decide(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, models.SourceEngine, out.Source)
	assert.Equal(t, models.ActionBuy, out.Display.Action)
}

func TestSessionDecideDefaultsToLatestDate(t *testing.T) {
	u, _ := newSessionFixture(t)

	out, err := u.Decide(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, day(2023, 4, 11), out.ResolvedDate)
}
