package model

// Progress holds the task-hour sums of a goal.
type Progress struct {
	TotalHours int64 `db:"total_hours" json:"total_hours"`
	DoneHours  int64 `db:"done_hours" json:"done_hours"`
}

// Percent returns floor(done/total*100), or 0 when no task carries hours.
// The result is always within [0, 100].
func (p Progress) Percent() int {
	if p.TotalHours <= 0 || p.DoneHours <= 0 {
		return 0
	}
	if p.DoneHours >= p.TotalHours {
		return 100
	}
	return int(p.DoneHours * 100 / p.TotalHours)
}
