package models

import "strings"

// UnitFilter narrows a unit listing. Zero-valued fields apply no
// constraint.
type UnitFilter struct {
	Status   string   `form:"status"`
	Area     string   `form:"area"`
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
}

// Matches checks if a unit passes every set filter field.
func (f *UnitFilter) Matches(unit *Unit) bool {
	if f == nil {
		return true
	}

	if f.Status != "" && !strings.EqualFold(f.Status, unit.Status) {
		return false
	}

	if f.Area != "" {
		if !strings.Contains(strings.ToLower(unit.SubLocality), strings.ToLower(f.Area)) {
			return false
		}
	}

	// Price bounds treat an absent price as zero, same as the aggregates.
	if f.MinPrice != nil && unit.PriceValue() < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && unit.PriceValue() > *f.MaxPrice {
		return false
	}

	return true
}
