package sales

import (
	"fmt"
	"math"
	"time"

	"github.com/Pungieee/smart-property-pms/internal/mapper"
	"github.com/Pungieee/smart-property-pms/internal/models"
)

// MaxContracts caps how many units get a synthetic contract.
const MaxContracts = 100

const downPaymentRate = 0.2

// installmentPlan fixes the three-step schedule applied to every
// contract: share of the unit price and days until due.
var installmentPlan = []struct {
	share   float64
	dueDays int
}{
	{share: 0.2, dueDays: 30},
	{share: 0.3, dueDays: 60},
	{share: 0.3, dueDays: 90},
}

// BuildContracts synthesizes one contract per unit from the head of the
// dataset, in order. now anchors the relative booking and due dates, so
// every call regenerates the schedule afresh.
func BuildContracts(records []models.RawRecord, now time.Time) []models.Contract {
	limit := len(records)
	if limit > MaxContracts {
		limit = MaxContracts
	}

	contracts := make([]models.Contract, 0, limit)
	for i := 0; i < limit; i++ {
		unit := mapper.ToUnit(records[i], i)
		price := unit.PriceValue()

		contract := models.Contract{
			ContractID:  fmt.Sprintf("CN-%s", unit.UnitID),
			UnitID:      unit.UnitID,
			ProjectName: unit.ProjectName,
			BuyerName:   fmt.Sprintf("Buyer %d", i+1),
			BookingDate: now.AddDate(0, 0, -i),
			TotalPrice:  price,
			DownPayment: math.Round(price * downPaymentRate),
		}

		for seq, step := range installmentPlan {
			contract.Installments = append(contract.Installments, models.Installment{
				Seq:     seq + 1,
				Amount:  math.Round(price * step.share),
				DueDate: now.AddDate(0, 0, step.dueDays),
				Status:  "Pending",
			})
		}

		contracts = append(contracts, contract)
	}

	return contracts
}
