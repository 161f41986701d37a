package models

// Commodity identifies one tracked futures market.
type Commodity string

const (
	CommodityGold   Commodity = "gold"
	CommodityCoffee Commodity = "coffee"
)

// AllCommodities lists every supported commodity key.
func AllCommodities() []Commodity {
	return []Commodity{CommodityGold, CommodityCoffee}
}

// IsValid reports whether c is a supported commodity key.
func (c Commodity) IsValid() bool {
	switch c {
	case CommodityGold, CommodityCoffee:
		return true
	default:
		return false
	}
}

func (c Commodity) String() string { return string(c) }
