package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Pungieee/smart-property-pms/internal/database"
	"github.com/Pungieee/smart-property-pms/internal/models"
)

// Store holds the raw dataset for the process lifetime. Records are read
// once at startup and never mutated afterwards, so access needs no
// locking.
type Store struct {
	records []models.RawRecord
}

// New builds a store around an already-decoded record set.
func New(records []models.RawRecord) *Store {
	if records == nil {
		records = []models.RawRecord{}
	}
	return &Store{records: records}
}

// Load reads the dataset at path. A missing, empty, or malformed source
// yields an empty store rather than an error; handlers treat that as an
// empty inventory.
func Load(path string, logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.New()
	}

	records, err := readRecords(path)
	if err != nil {
		logger.WithError(err).WithField("path", path).Warn("Dataset unavailable, serving an empty set")
		return New(nil)
	}

	logger.WithFields(logrus.Fields{
		"path":    path,
		"records": len(records),
	}).Info("Dataset loaded")

	return New(records)
}

func readRecords(path string) ([]models.RawRecord, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %v", err)
	}

	switch strings.ToLower(filepath.Ext(absPath)) {
	case ".db", ".sqlite":
		return database.ReadSnapshot(absPath)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %v", err)
	}

	var records []models.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %v", err)
	}

	return records, nil
}

// Records returns the raw dataset in original order. Callers must not
// mutate the returned slice.
func (s *Store) Records() []models.RawRecord {
	return s.records
}

// Len reports the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}
