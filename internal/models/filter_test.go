package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitFilterMatches(t *testing.T) {
	unit := &Unit{
		UnitID:      "A-101",
		SubLocality: "Dubai Marina",
		Status:      "Available",
		Price:       ptr(450000),
	}

	tests := []struct {
		name   string
		filter *UnitFilter
		want   bool
	}{
		{
			name:   "nil filter matches",
			filter: nil,
			want:   true,
		},
		{
			name:   "empty filter matches",
			filter: &UnitFilter{},
			want:   true,
		},
		{
			name:   "status matches case-insensitively",
			filter: &UnitFilter{Status: "AVAILABLE"},
			want:   true,
		},
		{
			name:   "status mismatch",
			filter: &UnitFilter{Status: "Sold"},
			want:   false,
		},
		{
			name:   "area matches substring case-insensitively",
			filter: &UnitFilter{Area: "marina"},
			want:   true,
		},
		{
			name:   "area mismatch",
			filter: &UnitFilter{Area: "palm"},
			want:   false,
		},
		{
			name:   "price inside bounds",
			filter: &UnitFilter{MinPrice: ptr(400000), MaxPrice: ptr(500000)},
			want:   true,
		},
		{
			name:   "price bounds are inclusive",
			filter: &UnitFilter{MinPrice: ptr(450000), MaxPrice: ptr(450000)},
			want:   true,
		},
		{
			name:   "price below minimum",
			filter: &UnitFilter{MinPrice: ptr(500000)},
			want:   false,
		},
		{
			name:   "price above maximum",
			filter: &UnitFilter{MaxPrice: ptr(400000)},
			want:   false,
		},
		{
			name:   "all fields must pass",
			filter: &UnitFilter{Status: "Available", Area: "marina", MaxPrice: ptr(400000)},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(unit))
		})
	}
}

func TestUnitFilterTreatsMissingPriceAsZero(t *testing.T) {
	unit := &Unit{UnitID: "A-102", Status: "Available"}

	assert.False(t, (&UnitFilter{MinPrice: ptr(1)}).Matches(unit))
	assert.True(t, (&UnitFilter{MaxPrice: ptr(1)}).Matches(unit))
}

// Helper function to create pointer to float64
func ptr(v float64) *float64 {
	return &v
}
