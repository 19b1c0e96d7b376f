package maintenance

import (
	"fmt"
	"time"

	"github.com/Pungieee/smart-property-pms/internal/mapper"
	"github.com/Pungieee/smart-property-pms/internal/models"
)

// MaxTasks caps how many units get a synthetic maintenance task.
const MaxTasks = 50

const (
	// Units above this price get a high-priority task.
	highPriorityPrice = 900000
	// Units above this price per sqft get an inspection instead of a
	// general repair.
	inspectionPerSqft = 500
)

// BuildTasks synthesizes one task per unit from the head of the dataset,
// in order. now anchors the relative schedule.
func BuildTasks(records []models.RawRecord, now time.Time) []models.MaintenanceTask {
	limit := len(records)
	if limit > MaxTasks {
		limit = MaxTasks
	}

	tasks := make([]models.MaintenanceTask, 0, limit)
	for i := 0; i < limit; i++ {
		unit := mapper.ToUnit(records[i], i)

		task := models.MaintenanceTask{
			TaskID:        fmt.Sprintf("MT-%s", unit.UnitID),
			UnitID:        unit.UnitID,
			ProjectName:   unit.ProjectName,
			Priority:      "Normal",
			TaskType:      "General Repair",
			Status:        "Open",
			ScheduledDate: now.AddDate(0, 0, i+1),
		}

		if unit.PriceValue() > highPriorityPrice {
			task.Priority = "High"
		}
		if unit.PricePerSqft != nil && *unit.PricePerSqft > inspectionPerSqft {
			task.TaskType = "Inspection"
		}
		if i%3 == 0 {
			task.Status = "In Progress"
		}

		tasks = append(tasks, task)
	}

	return tasks
}
