package models

// Posture is the direction of the implied trade being tested.
type Posture string

const (
	PostureLong  Posture = "long"
	PostureShort Posture = "short"
)

// IsValid reports whether p is a known posture.
func (p Posture) IsValid() bool {
	return p == PostureLong || p == PostureShort
}

// ThresholdSet holds per-index extremity thresholds for one posture.
// Values are conventionally in [0,100] but are not clamped.
type ThresholdSet struct {
	Commercials      float64 `json:"commercials"`
	LargeSpeculators float64 `json:"large_speculators"`
	SmallSpeculators float64 `json:"small_speculators"`
}

// ThresholdPair holds the long and short posture thresholds for a commodity.
type ThresholdPair struct {
	Long  ThresholdSet `json:"long"`
	Short ThresholdSet `json:"short"`
}

// IndexEnablement masks which indices participate in classification.
// A disabled index passes its comparison vacuously.
type IndexEnablement struct {
	Commercials      bool `json:"commercials"`
	LargeSpeculators bool `json:"large_speculators"`
	SmallSpeculators bool `json:"small_speculators"`
}

// AllEnabled returns a mask with every index participating.
func AllEnabled() IndexEnablement {
	return IndexEnablement{Commercials: true, LargeSpeculators: true, SmallSpeculators: true}
}
