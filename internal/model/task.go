package model

type Task struct {
	ID          int64  `db:"id" json:"id"`
	GoalID      int64  `db:"goal_id" json:"goal_id"`
	Description string `db:"description" json:"description"`
	Completed   bool   `db:"completed" json:"completed"`
	Hours       int    `db:"hours" json:"hours"`
	Deadline    *Date  `db:"deadline" json:"deadline,omitempty"`
}

// DueTask is a task as listed by the calendar for a single deadline date.
type DueTask struct {
	TaskID      int64  `db:"task_id" json:"task_id"`
	GoalID      int64  `db:"goal_id" json:"goal_id"`
	GoalName    string `db:"goal_name" json:"goal_name"`
	Description string `db:"description" json:"description"`
	Completed   bool   `db:"completed" json:"completed"`
}
