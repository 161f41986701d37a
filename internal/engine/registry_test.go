package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CotSignal/internal/domain/models"
)

func TestDefaultThresholds(t *testing.T) {
	pair, err := DefaultThresholds(models.CommodityGold)
	require.NoError(t, err)
	assert.Equal(t, 85.0, pair.Long.Commercials)
	assert.Equal(t, 95.0, pair.Short.LargeSpeculators)

	pair, err = DefaultThresholds(models.CommodityCoffee)
	require.NoError(t, err)
	assert.Equal(t, 80.0, pair.Long.Commercials)

	_, err = DefaultThresholds(models.Commodity("uranium"))
	assert.ErrorIs(t, err, ErrUnknownCommodity)
}

func TestDefaultThresholdsReturnsCopy(t *testing.T) {
	pair, err := DefaultThresholds(models.CommodityGold)
	require.NoError(t, err)
	pair.Long.Commercials = 0

	again, err := DefaultThresholds(models.CommodityGold)
	require.NoError(t, err)
	assert.Equal(t, 85.0, again.Long.Commercials, "registry defaults are immutable")
}

func TestValidateRegistry(t *testing.T) {
	assert.NoError(t, ValidateRegistry())
}
