package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CotSignal/internal/domain/models"
)

// End-to-end decision over the gold defaults: the positioning record
// confirms the long posture, price moved down against bullish news, so
// the contradiction routes through the long-override rule to buy.
func TestDecisionGoldLongOverridesNewsFailure(t *testing.T) {
	r := indexRecord(f(90), f(3), f(7))
	pair, err := DefaultThresholds(models.CommodityGold)
	require.NoError(t, err)

	v := Classify(r, pair, models.AllEnabled())
	require.Equal(t, models.VerdictTrue, v.Long)
	require.Equal(t, models.VerdictFalse, v.Short)

	failure := NewsFailure(signal(models.PriceDown, models.SentimentBullish, 4))
	require.True(t, failure)

	d := Arbitrate(v, failure)
	assert.Equal(t, models.ActionBuy, d.Action)
}

func TestDecisionPipelineIsPure(t *testing.T) {
	r := indexRecord(f(2), f(97), f(93))
	pair, err := DefaultThresholds(models.CommodityGold)
	require.NoError(t, err)

	first := Arbitrate(Classify(r, pair, models.AllEnabled()), true)
	assert.Equal(t, models.ActionSell, first.Action)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Arbitrate(Classify(r, pair, models.AllEnabled()), true))
	}
}
