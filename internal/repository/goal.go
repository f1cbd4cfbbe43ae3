package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/goaltracker/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(goalID int64) (*model.Goal, error)
	Goals() ([]*model.Goal, error)
	Delete(goalID int64) error
	DeleteWithTasks(goalID int64) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (name, hours) VALUES ($1, $2) RETURNING id`

	return r.db.QueryRow(query, goal.Name, goal.Hours).Scan(&goal.ID)
}

func (r *goalRepository) ByID(goalID int64) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT id, name, hours FROM goals WHERE id = $1`

	err := r.db.Get(goal, query, goalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// Goals returns every goal in insertion order.
func (r *goalRepository) Goals() ([]*model.Goal, error) {
	goals := []*model.Goal{}
	query := `SELECT id, name, hours FROM goals ORDER BY id ASC`

	err := r.db.Select(&goals, query)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

// Delete removes the goal row only. Dependent tasks are left untouched.
func (r *goalRepository) Delete(goalID int64) error {
	query := `DELETE FROM goals WHERE id = $1`
	result, err := r.db.Exec(query, goalID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// DeleteWithTasks removes the goal and all of its tasks atomically.
func (r *goalRepository) DeleteWithTasks(goalID int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM tasks WHERE goal_id = $1`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete tasks of goal %d: %w", goalID, err)
	}

	result, err := tx.Exec(`DELETE FROM goals WHERE id = $1`, goalID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return tx.Commit()
}
