package stats

import (
	"github.com/Pungieee/smart-property-pms/internal/mapper"
	"github.com/Pungieee/smart-property-pms/internal/models"
)

// Listings above this price are flagged premium in the insights view.
const premiumPriceThreshold = 1000000

// BuildInsights maps every record and attaches the raw original plus the
// premium flag. No filtering, no cap.
func BuildInsights(records []models.RawRecord) []models.UnitInsight {
	insights := make([]models.UnitInsight, 0, len(records))
	for i, record := range records {
		unit := mapper.ToUnit(record, i)
		insights = append(insights, models.UnitInsight{
			Unit:      unit,
			Original:  record,
			IsPremium: unit.PriceValue() > premiumPriceThreshold,
		})
	}
	return insights
}
