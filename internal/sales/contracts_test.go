package sales

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pungieee/smart-property-pms/internal/models"
)

func TestBuildContracts(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	records := []models.RawRecord{
		{"unit_id": "A-1", "project_name": "Palm Court", "price": float64(450000)},
		{"unit_id": "A-2", "price": float64(999999)},
		{"unit_id": "A-3"},
	}

	contracts := BuildContracts(records, now)

	require.Len(t, contracts, 3)

	first := contracts[0]
	assert.Equal(t, "CN-A-1", first.ContractID)
	assert.Equal(t, "A-1", first.UnitID)
	assert.Equal(t, "Palm Court", first.ProjectName)
	assert.Equal(t, "Buyer 1", first.BuyerName)
	assert.Equal(t, now, first.BookingDate)
	assert.Equal(t, float64(450000), first.TotalPrice)
	assert.Equal(t, float64(90000), first.DownPayment)

	require.Len(t, first.Installments, 3)
	assert.Equal(t, []models.Installment{
		{Seq: 1, Amount: 90000, DueDate: now.AddDate(0, 0, 30), Status: "Pending"},
		{Seq: 2, Amount: 135000, DueDate: now.AddDate(0, 0, 60), Status: "Pending"},
		{Seq: 3, Amount: 135000, DueDate: now.AddDate(0, 0, 90), Status: "Pending"},
	}, first.Installments)

	// Booking dates step one day back per unit
	assert.Equal(t, now.AddDate(0, 0, -1), contracts[1].BookingDate)
	assert.Equal(t, now.AddDate(0, 0, -2), contracts[2].BookingDate)
	assert.Equal(t, "Buyer 2", contracts[1].BuyerName)

	// Installment amounts round to whole currency units
	assert.Equal(t, float64(200000), contracts[1].DownPayment)
	assert.Equal(t, float64(200000), contracts[1].Installments[0].Amount)
	assert.Equal(t, float64(300000), contracts[1].Installments[1].Amount)

	// A unit without a price still gets a zeroed contract
	assert.Equal(t, float64(0), contracts[2].TotalPrice)
	assert.Equal(t, float64(0), contracts[2].DownPayment)
}

func TestBuildContractsCapsAtLimit(t *testing.T) {
	records := make([]models.RawRecord, 0, MaxContracts+20)
	for i := 0; i < MaxContracts+20; i++ {
		records = append(records, models.RawRecord{
			"unit_id": fmt.Sprintf("U-%d", i),
			"price":   float64(100000),
		})
	}

	contracts := BuildContracts(records, time.Now())

	require.Len(t, contracts, MaxContracts)
	assert.Equal(t, "CN-U-0", contracts[0].ContractID)
	assert.Equal(t, fmt.Sprintf("CN-U-%d", MaxContracts-1), contracts[MaxContracts-1].ContractID)
}

func TestBuildContractsAllInstallmentsPending(t *testing.T) {
	records := []models.RawRecord{
		{"unit_id": "A-1", "price": float64(720000)},
	}

	contracts := BuildContracts(records, time.Now())

	require.Len(t, contracts, 1)
	for _, installment := range contracts[0].Installments {
		assert.Equal(t, "Pending", installment.Status)
	}
}

func TestBuildContractsEmptyDataset(t *testing.T) {
	contracts := BuildContracts(nil, time.Now())

	assert.NotNil(t, contracts)
	assert.Empty(t, contracts)
}
