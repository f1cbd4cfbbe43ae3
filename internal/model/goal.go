package model

type Goal struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Hours int    `db:"hours" json:"hours"`
}

// GoalProgress is a goal together with its current task-hour totals.
type GoalProgress struct {
	Goal     *Goal    `json:"goal"`
	Progress Progress `json:"progress"`
}

func (g GoalProgress) Percent() int {
	return g.Progress.Percent()
}
