package stats

import (
	"sort"

	"github.com/Pungieee/smart-property-pms/internal/mapper"
	"github.com/Pungieee/smart-property-pms/internal/models"
)

// MaxAreas caps how many sub-localities the overview reports.
const MaxAreas = 10

// Empty is the zeroed overview payload served when the dataset yields
// nothing usable.
func Empty() models.Overview {
	return models.Overview{ByArea: []models.AreaStats{}}
}

// BuildOverview aggregates the whole dataset into the dashboard KPIs.
// Absent prices count as zero.
func BuildOverview(records []models.RawRecord) models.Overview {
	units := mapper.ToUnits(records)

	overview := Empty()
	overview.UnitCount = len(units)
	for i := range units {
		overview.TotalValue += units[i].PriceValue()
	}
	if overview.UnitCount > 0 {
		overview.AvgPrice = overview.TotalValue / float64(overview.UnitCount)
	}
	overview.ByArea = TopAreas(units, MaxAreas)

	return overview
}

// TopAreas groups units by sub-locality and returns the busiest areas,
// count descending with name as the tie break. Units without a
// sub-locality group under "Unknown".
func TopAreas(units []models.Unit, limit int) []models.AreaStats {
	type bucket struct {
		total float64
		count int
	}

	buckets := make(map[string]*bucket)
	for i := range units {
		name := units[i].SubLocality
		if name == "" {
			name = "Unknown"
		}
		b := buckets[name]
		if b == nil {
			b = &bucket{}
			buckets[name] = b
		}
		b.total += units[i].PriceValue()
		b.count++
	}

	areas := make([]models.AreaStats, 0, len(buckets))
	for name, b := range buckets {
		areas = append(areas, models.AreaStats{
			Name:     name,
			AvgPrice: b.total / float64(b.count),
			Count:    b.count,
		})
	}

	sort.Slice(areas, func(i, j int) bool {
		if areas[i].Count != areas[j].Count {
			return areas[i].Count > areas[j].Count
		}
		return areas[i].Name < areas[j].Name
	})

	if len(areas) > limit {
		areas = areas[:limit]
	}

	return areas
}
