package database

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/Pungieee/smart-property-pms/internal/models"
)

// snapshotBatchSize bounds how many rows go into one insert transaction.
const snapshotBatchSize = 100

// WriteSnapshot replaces the listings table with the given records. Only
// cmd/seed calls this; the server itself never writes.
func WriteSnapshot(db *gorm.DB, records []models.RawRecord) error {
	if err := db.AutoMigrate(&Listing{}); err != nil {
		return fmt.Errorf("failed to migrate snapshot schema: %w", err)
	}

	if err := db.Exec("DELETE FROM listings").Error; err != nil {
		return fmt.Errorf("failed to clear listings: %w", err)
	}

	for start := 0; start < len(records); start += snapshotBatchSize {
		end := start + snapshotBatchSize
		if end > len(records) {
			end = len(records)
		}

		batch := make([]Listing, 0, end-start)
		for _, record := range records[start:end] {
			batch = append(batch, toListing(record))
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&batch).Error; err != nil {
				return fmt.Errorf("failed to insert listings batch: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func toListing(record models.RawRecord) Listing {
	var listing Listing

	if id, ok := record.FieldString("unit_id", "id"); ok {
		listing.UnitID = &id
	} else if id, ok := record.FieldNumber("unit_id", "id"); ok {
		formatted := strconv.FormatFloat(id, 'f', -1, 64)
		listing.UnitID = &formatted
	}
	if name, ok := record.FieldString("project_name", "project"); ok {
		listing.ProjectName = &name
	}
	if area, ok := record.FieldString("sub_locality", "area"); ok {
		listing.SubLocality = &area
	}
	if address, ok := record.FieldString("address"); ok {
		listing.Address = &address
	}
	if price, ok := record.FieldNumber("price"); ok {
		listing.Price = &price
	}
	if sqft, ok := record.FieldNumber("sqft", "square_feet"); ok {
		listing.Sqft = &sqft
	}
	if status, ok := record.FieldString("status"); ok {
		listing.Status = &status
	}
	if lat, ok := record.FieldNumber("latitude", "lat"); ok {
		listing.Latitude = &lat
	}
	if lng, ok := record.FieldNumber("longitude", "lng"); ok {
		listing.Longitude = &lng
	}

	return listing
}
