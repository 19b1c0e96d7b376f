package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Pungieee/smart-property-pms/internal/database"
	"github.com/Pungieee/smart-property-pms/internal/models"
)

func TestLoadFromJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.json")
	payload := `[
		{"unit_id": "A-1", "price": 100000},
		{"unit_id": "A-2", "price": 200000, "sub_locality": "Marina"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	store := Load(path, logrus.New())

	require.Equal(t, 2, store.Len())
	assert.Equal(t, "A-1", store.Records()[0]["unit_id"])
	assert.Equal(t, "Marina", store.Records()[1]["sub_locality"])
}

func TestLoadFromSQLiteSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.db")

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	records := []models.RawRecord{
		{"unit_id": "A-1", "price": 100000.0},
		{"unit_id": "A-2", "sub_locality": "Marina"},
	}
	require.NoError(t, database.WriteSnapshot(db, records))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	store := Load(path, logrus.New())

	require.Equal(t, 2, store.Len())
	assert.Equal(t, "A-1", store.Records()[0]["unit_id"])
	assert.Equal(t, "Marina", store.Records()[1]["sub_locality"])
}

func TestLoadDegradesToEmptyStore(t *testing.T) {
	dir := t.TempDir()

	objectPath := filepath.Join(dir, "object.json")
	require.NoError(t, os.WriteFile(objectPath, []byte(`{"listings": []}`), 0644))

	garbagePath := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(garbagePath, []byte(`not json at all`), 0644))

	emptyPath := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(emptyPath, []byte(``), 0644))

	tests := []struct {
		name string
		path string
	}{
		{name: "Missing file", path: filepath.Join(dir, "nowhere.json")},
		{name: "Top-level object instead of array", path: objectPath},
		{name: "Garbage content", path: garbagePath},
		{name: "Empty file", path: emptyPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := Load(tt.path, logrus.New())

			assert.Equal(t, 0, store.Len())
			assert.NotNil(t, store.Records())
		})
	}
}

func TestNewNormalizesNil(t *testing.T) {
	store := New(nil)

	assert.Equal(t, 0, store.Len())
	assert.NotNil(t, store.Records())
}
