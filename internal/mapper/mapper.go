package mapper

import (
	"fmt"
	"strconv"

	"github.com/Pungieee/smart-property-pms/internal/models"
)

const (
	fallbackProjectName = "Unknown Project"
	fallbackAddress     = "Unknown"

	// Listings above this price without an explicit status are treated
	// as reserved.
	reservedPriceThreshold = 800000
)

// ToUnit normalizes one raw record. index is the record's position in the
// dataset and seeds the placeholder identifier, so the same record at the
// same index always maps to the same unit.
func ToUnit(record models.RawRecord, index int) models.Unit {
	var unit models.Unit

	unit.UnitID = identifier(record, index)

	subLocality, _ := record.FieldString("sub_locality", "area")
	unit.SubLocality = subLocality

	if name, ok := record.FieldString("project_name", "project"); ok {
		unit.ProjectName = name
	} else if subLocality != "" {
		unit.ProjectName = subLocality
	} else {
		unit.ProjectName = fallbackProjectName
	}

	if address, ok := record.FieldString("address"); ok {
		unit.Address = address
	} else if subLocality != "" {
		unit.Address = subLocality
	} else {
		unit.Address = fallbackAddress
	}

	if price, ok := record.FieldNumber("price"); ok {
		unit.Price = &price
	}
	if sqft, ok := record.FieldNumber("sqft", "square_feet"); ok {
		unit.Sqft = &sqft
	}
	if unit.Sqft != nil && *unit.Sqft != 0 {
		perSqft := unit.PriceValue() / *unit.Sqft
		unit.PricePerSqft = &perSqft
	}

	if status, ok := record.FieldString("status"); ok {
		unit.Status = status
	} else if unit.PriceValue() > reservedPriceThreshold {
		unit.Status = "Reserved"
	} else {
		unit.Status = "Available"
	}

	if lat, ok := record.FieldNumber("latitude", "lat"); ok {
		unit.Latitude = &lat
	}
	if lng, ok := record.FieldNumber("longitude", "lng"); ok {
		unit.Longitude = &lng
	}

	return unit
}

// ToUnits maps a whole dataset in order.
func ToUnits(records []models.RawRecord) []models.Unit {
	units := make([]models.Unit, 0, len(records))
	for i, record := range records {
		units = append(units, ToUnit(record, i))
	}
	return units
}

func identifier(record models.RawRecord, index int) string {
	if id, ok := record.FieldString("unit_id", "id"); ok {
		return id
	}
	if id, ok := record.FieldNumber("unit_id", "id"); ok {
		return strconv.FormatFloat(id, 'f', -1, 64)
	}
	return fmt.Sprintf("UNIT-%d", index+1)
}
