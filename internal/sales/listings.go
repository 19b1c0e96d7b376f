package sales

import (
	"github.com/Pungieee/smart-property-pms/internal/mapper"
	"github.com/Pungieee/smart-property-pms/internal/models"
)

// MaxListings caps the property listing response.
const MaxListings = 200

// FilterUnits maps the dataset and applies the optional listing filter,
// keeping original order and at most MaxListings matches.
func FilterUnits(records []models.RawRecord, filter *models.UnitFilter) []models.Unit {
	matched := make([]models.Unit, 0)
	for i, record := range records {
		unit := mapper.ToUnit(record, i)
		if !filter.Matches(&unit) {
			continue
		}
		matched = append(matched, unit)
		if len(matched) == MaxListings {
			break
		}
	}
	return matched
}
