package engine

import (
	"fmt"

	"CotSignal/internal/domain/models"
)

// registryDefaults is the closed mapping from commodity to its default
// threshold pair. Session edits never write back here.
var registryDefaults = map[models.Commodity]models.ThresholdPair{
	models.CommodityGold: {
		Long:  models.ThresholdSet{Commercials: 85, LargeSpeculators: 5, SmallSpeculators: 10},
		Short: models.ThresholdSet{Commercials: 5, LargeSpeculators: 95, SmallSpeculators: 90},
	},
	models.CommodityCoffee: {
		Long:  models.ThresholdSet{Commercials: 80, LargeSpeculators: 10, SmallSpeculators: 15},
		Short: models.ThresholdSet{Commercials: 20, LargeSpeculators: 90, SmallSpeculators: 85},
	},
}

// DefaultThresholds returns the registry defaults for a commodity.
func DefaultThresholds(c models.Commodity) (models.ThresholdPair, error) {
	pair, ok := registryDefaults[c]
	if !ok {
		return models.ThresholdPair{}, fmt.Errorf("%w: %s", ErrUnknownCommodity, c)
	}
	return pair, nil
}

// ValidateRegistry checks at startup that every supported commodity has
// a threshold entry and no entry points at an unsupported key.
func ValidateRegistry() error {
	for _, c := range models.AllCommodities() {
		if _, ok := registryDefaults[c]; !ok {
			return fmt.Errorf("threshold registry: missing entry for %s", c)
		}
	}
	for c := range registryDefaults {
		if !c.IsValid() {
			return fmt.Errorf("threshold registry: entry for unsupported commodity %s", c)
		}
	}
	return nil
}
