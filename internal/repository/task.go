package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/goaltracker/internal/model"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

type TaskRepository interface {
	Create(task *model.Task) error
	ByID(taskID int64) (*model.Task, error)
	Tasks(goalID int64) ([]*model.Task, error)
	SetCompleted(taskID int64, completed bool) error
	Delete(taskID int64) error
	CountByGoal(goalID int64) (int, error)
	HourTotals(goalID int64) (model.Progress, error)
	ByDeadline(date model.Date) ([]*model.DueTask, error)
}

type taskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(task *model.Task) error {
	query := `INSERT INTO tasks (goal_id, description, completed, hours, deadline)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`

	return r.db.QueryRow(query,
		task.GoalID,
		task.Description,
		task.Completed,
		task.Hours,
		task.Deadline,
	).Scan(&task.ID)
}

func (r *taskRepository) ByID(taskID int64) (*model.Task, error) {
	task := &model.Task{}
	query := `SELECT id, goal_id, description, completed, hours, deadline FROM tasks WHERE id = $1`

	err := r.db.Get(task, query, taskID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	return task, nil
}

// Tasks returns the tasks of one goal in insertion order.
func (r *taskRepository) Tasks(goalID int64) ([]*model.Task, error) {
	tasks := []*model.Task{}
	query := `SELECT id, goal_id, description, completed, hours, deadline
	          FROM tasks WHERE goal_id = $1 ORDER BY id ASC`

	err := r.db.Select(&tasks, query, goalID)
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *taskRepository) SetCompleted(taskID int64, completed bool) error {
	query := `UPDATE tasks SET completed = $1 WHERE id = $2`

	result, err := r.db.Exec(query, completed, taskID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) Delete(taskID int64) error {
	query := `DELETE FROM tasks WHERE id = $1`

	result, err := r.db.Exec(query, taskID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) CountByGoal(goalID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM tasks WHERE goal_id = $1`
	err := r.db.QueryRow(query, goalID).Scan(&count)
	return count, err
}

// HourTotals sums the hours of all tasks of a goal and of its completed ones.
func (r *taskRepository) HourTotals(goalID int64) (model.Progress, error) {
	var progress model.Progress
	query := `SELECT
	              COALESCE(SUM(hours), 0) AS total_hours,
	              COALESCE(SUM(CASE WHEN completed THEN hours ELSE 0 END), 0) AS done_hours
	          FROM tasks WHERE goal_id = $1`

	err := r.db.Get(&progress, query, goalID)
	return progress, err
}

// ByDeadline returns the tasks whose deadline is exactly the given date.
func (r *taskRepository) ByDeadline(date model.Date) ([]*model.DueTask, error) {
	due := []*model.DueTask{}
	query := `SELECT t.id AS task_id, t.goal_id, COALESCE(g.name, '') AS goal_name,
	                 t.description, t.completed
	          FROM tasks t
	          LEFT JOIN goals g ON g.id = t.goal_id
	          WHERE t.deadline = $1
	          ORDER BY t.id ASC`

	err := r.db.Select(&due, query, date)
	if err != nil {
		return nil, err
	}

	return due, nil
}
