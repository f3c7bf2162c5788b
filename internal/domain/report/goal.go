package report

import (
	"math"

	"fieldops/internal/domain/entity"
)

// Progress is the derived state of a goal.
type Progress struct {
	Goal     entity.Goal `json:"goal"`
	Realized float64     `json:"realized"`
	Target   float64     `json:"target"`
	Percent  float64     `json:"percent"`
}

// Reached reports whether the target was met.
func (p Progress) Reached() bool {
	return p.Target > 0 && p.Percent >= 100
}

// RealizedArea sums the area of the records of city whose start time falls in month.
func RealizedArea(city string, month entity.YearMonth, records []entity.ServiceRecord) float64 {
	var total float64
	for _, r := range records {
		if r.LocationCity == city && month.Contains(r.StartTime) {
			total += r.Area()
		}
	}

	return total
}

// Percent returns realized/target as a percentage clamped to [0, 100].
// A non-positive target yields 0.
func Percent(realized, target float64) float64 {
	if target <= 0 || math.IsNaN(realized) {
		return 0
	}

	return math.Max(0, math.Min(100, realized/target*100))
}

// GoalProgress computes the progress of goal over records.
func GoalProgress(goal entity.Goal, records []entity.ServiceRecord) Progress {
	realized := RealizedArea(goal.City, goal.Month, records)

	return Progress{
		Goal:     goal,
		Realized: realized,
		Target:   goal.TargetArea,
		Percent:  Percent(realized, goal.TargetArea),
	}
}
