package session

import (
	"fmt"
	"time"

	"CotSignal/internal/domain/models"
	"CotSignal/internal/engine"
	"CotSignal/pkg/util"
)

// Bounds reports whether a date lies inside the loaded series range.
// *engine.Series satisfies it.
type Bounds interface {
	Contains(time.Time) bool
}

// Apply reduces state by one action and returns the next revision.
// On error the returned state is the input state unchanged. Apply never
// mutates its input; it is a pure function of (state, action, bounds).
func Apply(s State, a Action, bounds Bounds) (State, error) {
	switch a.Type {
	case ActionSelectDate:
		return selectDate(s, a, bounds)
	case ActionSetThreshold:
		return setThreshold(s, a)
	case ActionToggleIndex:
		return toggleIndex(s, a)
	case ActionSetPosture:
		return setPosture(s, a)
	case ActionLoadDefaults:
		return loadDefaults(s)
	case ActionSetCommodity:
		return setCommodity(s, a)
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
}

func selectDate(s State, a Action, bounds Bounds) (State, error) {
	date, ok := util.ParseDate(a.Date)
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrInvalidDate, a.Date)
	}
	if bounds == nil || !bounds.Contains(date) {
		return s, fmt.Errorf("%w: %s", ErrDateOutOfRange, util.FormatDate(date))
	}
	s.SelectedDate = date
	s.Revision++
	return s, nil
}

// setThreshold writes one index threshold on one posture's set.
// Non-numeric input coerces to zero, and still counts as an edit.
func setThreshold(s State, a Action) (State, error) {
	if !a.Posture.IsValid() {
		return s, fmt.Errorf("%w: %q", ErrInvalidPosture, a.Posture)
	}
	if !a.Index.IsValid() {
		return s, fmt.Errorf("%w: %q", ErrInvalidIndex, a.Index)
	}
	value, _ := util.CoerceFloat(a.Value)

	set := &s.Thresholds.Long
	if a.Posture == models.PostureShort {
		set = &s.Thresholds.Short
	}
	switch a.Index {
	case IndexCommercials:
		set.Commercials = value
	case IndexLargeSpeculators:
		set.LargeSpeculators = value
	case IndexSmallSpeculators:
		set.SmallSpeculators = value
	}
	s.Edited = true
	s.Revision++
	return s, nil
}

func toggleIndex(s State, a Action) (State, error) {
	switch a.Index {
	case IndexCommercials:
		s.Enablement.Commercials = !s.Enablement.Commercials
	case IndexLargeSpeculators:
		s.Enablement.LargeSpeculators = !s.Enablement.LargeSpeculators
	case IndexSmallSpeculators:
		s.Enablement.SmallSpeculators = !s.Enablement.SmallSpeculators
	default:
		return s, fmt.Errorf("%w: %q", ErrInvalidIndex, a.Index)
	}
	s.Revision++
	return s, nil
}

func setPosture(s State, a Action) (State, error) {
	if !a.Posture.IsValid() {
		return s, fmt.Errorf("%w: %q", ErrInvalidPosture, a.Posture)
	}
	s.Posture = a.Posture
	s.Revision++
	return s, nil
}

// loadDefaults restores the registry thresholds for the current
// commodity and clears the edited flag.
func loadDefaults(s State) (State, error) {
	pair, err := engine.DefaultThresholds(s.Commodity)
	if err != nil {
		return s, err
	}
	s.Thresholds = pair
	s.Edited = false
	s.Revision++
	return s, nil
}

// setCommodity switches markets. Thresholds revert to the new
// commodity's registry defaults unless the user edited them this
// session; session edits survive the switch.
func setCommodity(s State, a Action) (State, error) {
	if !a.Commodity.IsValid() {
		return s, fmt.Errorf("%w: %q", ErrInvalidCommodity, a.Commodity)
	}
	if a.Commodity == s.Commodity {
		return s, nil
	}
	s.Commodity = a.Commodity
	if !s.Edited {
		pair, err := engine.DefaultThresholds(a.Commodity)
		if err != nil {
			return s, err
		}
		s.Thresholds = pair
	}
	s.SelectedDate = time.Time{}
	s.Revision++
	return s, nil
}
