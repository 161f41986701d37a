package session

import (
	"time"

	"CotSignal/internal/domain/models"
	"CotSignal/internal/engine"
)

// State is one revision of a session's inputs to the decision engine:
// commodity, selected date, active thresholds, enablement mask, and
// posture. It is immutable; Apply produces the next revision. Edited
// tracks whether the user changed any threshold this session, which
// stops commodity switches from reverting to registry defaults.
type State struct {
	Commodity    models.Commodity       `json:"commodity"`
	SelectedDate time.Time              `json:"selected_date"`
	Thresholds   models.ThresholdPair   `json:"thresholds"`
	Enablement   models.IndexEnablement `json:"enablement"`
	Posture      models.Posture         `json:"posture"`
	Edited       bool                   `json:"edited"`
	Revision     int                    `json:"revision"`
}

// New returns the initial state for a commodity: registry defaults, all
// indices enabled, long posture, no date selected yet.
func New(c models.Commodity) (State, error) {
	pair, err := engine.DefaultThresholds(c)
	if err != nil {
		return State{}, err
	}
	return State{
		Commodity:  c,
		Thresholds: pair,
		Enablement: models.AllEnabled(),
		Posture:    models.PostureLong,
	}, nil
}

// ActiveThresholds returns the threshold set for the state's posture.
func (s State) ActiveThresholds() models.ThresholdSet {
	if s.Posture == models.PostureShort {
		return s.Thresholds.Short
	}
	return s.Thresholds.Long
}
