package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Pungieee/smart-property-pms/internal/database"
	"github.com/Pungieee/smart-property-pms/internal/models"
)

// seed converts a JSON listings file into the SQLite snapshot the server
// can be pointed at via DATASET_PATH.
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	input := flag.String("input", "data/listings.json", "JSON listings file to read")
	output := flag.String("output", "data/listings.db", "SQLite snapshot file to write")
	flag.Parse()

	raw, err := os.ReadFile(*input)
	if err != nil {
		logger.WithError(err).Fatal("Failed to read listings file")
	}

	var records []models.RawRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.WithError(err).Fatal("Failed to parse listings file")
	}

	db, err := gorm.Open(sqlite.Open(*output), &gorm.Config{})
	if err != nil {
		logger.WithError(err).Fatal("Failed to open snapshot database")
	}

	if err := database.WriteSnapshot(db, records); err != nil {
		logger.WithError(err).Fatal("Failed to write snapshot")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	logger.WithFields(logrus.Fields{
		"input":  *input,
		"output": *output,
		"count":  len(records),
	}).Info("Snapshot written")
}
