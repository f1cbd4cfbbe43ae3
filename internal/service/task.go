package service

import (
	"fmt"
	"strings"

	"github.com/templui/goaltracker/internal/model"
	"github.com/templui/goaltracker/internal/repository"
	"github.com/templui/goaltracker/internal/validation"
)

type TaskService struct {
	repo            repository.TaskRepository
	goalRepo        repository.GoalRepository
	progressService *ProgressService
}

func NewTaskService(
	repo repository.TaskRepository,
	goalRepo repository.GoalRepository,
	progressService *ProgressService,
) *TaskService {
	return &TaskService{
		repo:            repo,
		goalRepo:        goalRepo,
		progressService: progressService,
	}
}

// Create adds a task to an existing goal. The deadline is optional and
// accepts DD/MM/YYYY or DDMMYYYY. Nothing is written when any field fails
// to parse.
func (s *TaskService) Create(goalID int64, description, hours, deadline string) (*model.Task, error) {
	if err := validation.ValidateDescription(description); err != nil {
		return nil, err
	}

	parsedHours, err := validation.ParseHours(hours)
	if err != nil {
		return nil, err
	}

	parsedDeadline, err := validation.ParseDeadline(deadline)
	if err != nil {
		return nil, err
	}

	if _, err := s.goalRepo.ByID(goalID); err != nil {
		return nil, err
	}

	task := &model.Task{
		GoalID:      goalID,
		Description: strings.TrimSpace(description),
		Hours:       parsedHours,
		Deadline:    parsedDeadline,
	}

	err = s.repo.Create(task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func (s *TaskService) ByID(taskID int64) (*model.Task, error) {
	return s.repo.ByID(taskID)
}

func (s *TaskService) Tasks(goalID int64) ([]*model.Task, error) {
	if _, err := s.goalRepo.ByID(goalID); err != nil {
		return nil, err
	}
	return s.repo.Tasks(goalID)
}

// SetCompleted updates the flag and returns the owning goal's new percentage.
func (s *TaskService) SetCompleted(taskID int64, completed bool) (int, error) {
	task, err := s.repo.ByID(taskID)
	if err != nil {
		return 0, err
	}

	err = s.repo.SetCompleted(taskID, completed)
	if err != nil {
		return 0, err
	}

	return s.progressService.Compute(task.GoalID)
}

// Delete removes the task and returns the owning goal's new percentage.
func (s *TaskService) Delete(taskID int64) (int, error) {
	task, err := s.repo.ByID(taskID)
	if err != nil {
		return 0, err
	}

	err = s.repo.Delete(taskID)
	if err != nil {
		return 0, err
	}

	return s.progressService.Compute(task.GoalID)
}
