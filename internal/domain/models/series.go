package models

import "time"

// DailyRecord is one day of price and positioning data for a commodity.
// Index values are normalized 0-100 extremity measures for each
// participant category; a nil field means the value was absent in the
// source data. Records are immutable once loaded.
type DailyRecord struct {
	Date        time.Time
	Close       *float64
	Commercials *float64
	LargeSpecs  *float64
	SmallSpecs  *float64
}

// HasAllIndices reports whether all three positioning indices are present.
func (r DailyRecord) HasAllIndices() bool {
	return r.Commercials != nil && r.LargeSpecs != nil && r.SmallSpecs != nil
}
