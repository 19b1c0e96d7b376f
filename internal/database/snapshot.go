package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Pungieee/smart-property-pms/internal/models"
)

// Listing is the snapshot row layout. cmd/seed writes it with GORM; the
// Snapshot reader turns rows back into raw records. Pointer fields keep
// NULL distinct from zero so downstream fallbacks still apply.
type Listing struct {
	ID          int64 `gorm:"primaryKey"`
	UnitID      *string
	ProjectName *string
	SubLocality *string
	Address     *string
	Price       *float64
	Sqft        *float64
	Status      *string
	Latitude    *float64
	Longitude   *float64
}

func (Listing) TableName() string {
	return "listings"
}

// Snapshot is a read-only view over a SQLite dataset produced by cmd/seed.
type Snapshot struct {
	db *sql.DB
}

// Open opens a snapshot file in read-only mode.
func Open(dbPath string) (*Snapshot, error) {
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, err
	}

	return &Snapshot{db: db}, nil
}

func (s *Snapshot) Close() error {
	return s.db.Close()
}

// Records reads every listing in insertion order. NULL columns are left
// out of the resulting record entirely.
func (s *Snapshot) Records() ([]models.RawRecord, error) {
	rows, err := s.db.Query(`
        SELECT unit_id, project_name, sub_locality, address,
               price, sqft, status, latitude, longitude
        FROM listings
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var records []models.RawRecord
	for rows.Next() {
		var unitID, projectName, subLocality, address, status sql.NullString
		var price, sqft, latitude, longitude sql.NullFloat64

		err := rows.Scan(
			&unitID,
			&projectName,
			&subLocality,
			&address,
			&price,
			&sqft,
			&status,
			&latitude,
			&longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}

		record := models.RawRecord{}
		if unitID.Valid && unitID.String != "" {
			record["unit_id"] = unitID.String
		}
		if projectName.Valid && projectName.String != "" {
			record["project_name"] = projectName.String
		}
		if subLocality.Valid && subLocality.String != "" {
			record["sub_locality"] = subLocality.String
		}
		if address.Valid && address.String != "" {
			record["address"] = address.String
		}
		if price.Valid {
			record["price"] = price.Float64
		}
		if sqft.Valid {
			record["sqft"] = sqft.Float64
		}
		if status.Valid && status.String != "" {
			record["status"] = status.String
		}
		if latitude.Valid {
			record["latitude"] = latitude.Float64
		}
		if longitude.Valid {
			record["longitude"] = longitude.Float64
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listings: %w", err)
	}

	return records, nil
}

// ReadSnapshot loads all records from a snapshot file and closes it again.
func ReadSnapshot(dbPath string) ([]models.RawRecord, error) {
	snapshot, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer snapshot.Close()

	return snapshot.Records()
}
