package session

import "CotSignal/internal/domain/models"

// ActionType names one session mutation.
type ActionType string

const (
	ActionSelectDate   ActionType = "select_date"
	ActionSetThreshold ActionType = "set_threshold"
	ActionToggleIndex  ActionType = "toggle_index"
	ActionSetPosture   ActionType = "set_posture"
	ActionLoadDefaults ActionType = "load_defaults"
	ActionSetCommodity ActionType = "set_commodity"
)

// IndexName selects one of the three positioning indices.
type IndexName string

const (
	IndexCommercials      IndexName = "commercials"
	IndexLargeSpeculators IndexName = "large_speculators"
	IndexSmallSpeculators IndexName = "small_speculators"
)

// IsValid reports whether n names a known index.
func (n IndexName) IsValid() bool {
	switch n {
	case IndexCommercials, IndexLargeSpeculators, IndexSmallSpeculators:
		return true
	default:
		return false
	}
}

// Action is one explicit user mutation of session state. Fields beyond
// Type are read only by the action types that need them. Value carries
// the raw threshold entry as typed by the user; non-numeric input is
// coerced to zero rather than rejected.
type Action struct {
	Type      ActionType       `json:"type" validate:"required,oneof=select_date set_threshold toggle_index set_posture load_defaults set_commodity"`
	Date      string           `json:"date,omitempty"`
	Posture   models.Posture   `json:"posture,omitempty"`
	Index     IndexName        `json:"index,omitempty"`
	Value     string           `json:"value,omitempty"`
	Commodity models.Commodity `json:"commodity,omitempty"`
}
