package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/templui/goaltracker/internal/model"
	"github.com/templui/goaltracker/internal/repository"
	"github.com/templui/goaltracker/internal/validation"
)

var (
	ErrGoalHasTasks        = errors.New("goal still has tasks")
	ErrUnknownDeletePolicy = errors.New("unknown goal delete policy")
)

// DeletePolicy decides what happens to a goal's tasks when the goal is deleted.
type DeletePolicy string

const (
	DeleteCascade  DeletePolicy = "cascade"
	DeleteRestrict DeletePolicy = "restrict"
)

func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch policy := DeletePolicy(strings.ToLower(strings.TrimSpace(s))); policy {
	case DeleteCascade, DeleteRestrict:
		return policy, nil
	case "":
		return DeleteCascade, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDeletePolicy, s)
	}
}

type GoalService struct {
	repo            repository.GoalRepository
	taskRepo        repository.TaskRepository
	progressService *ProgressService
	policy          DeletePolicy
}

func NewGoalService(
	repo repository.GoalRepository,
	taskRepo repository.TaskRepository,
	progressService *ProgressService,
	policy DeletePolicy,
) *GoalService {
	return &GoalService{
		repo:            repo,
		taskRepo:        taskRepo,
		progressService: progressService,
		policy:          policy,
	}
}

// Create validates name and hours before anything is written.
func (s *GoalService) Create(name, hours string) (*model.Goal, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}

	parsedHours, err := validation.ParseHours(hours)
	if err != nil {
		return nil, err
	}

	goal := &model.Goal{
		Name:  strings.TrimSpace(name),
		Hours: parsedHours,
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) ByID(goalID int64) (*model.Goal, error) {
	return s.repo.ByID(goalID)
}

func (s *GoalService) Goals() ([]*model.Goal, error) {
	return s.repo.Goals()
}

// GoalsWithProgress lists every goal in creation order with its freshly
// computed task-hour totals.
func (s *GoalService) GoalsWithProgress() ([]*model.GoalProgress, error) {
	goals, err := s.repo.Goals()
	if err != nil {
		return nil, err
	}

	result := make([]*model.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		progress, err := s.progressService.Detail(goal.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &model.GoalProgress{Goal: goal, Progress: progress})
	}

	return result, nil
}

func (s *GoalService) WithProgress(goalID int64) (*model.GoalProgress, error) {
	goal, err := s.repo.ByID(goalID)
	if err != nil {
		return nil, err
	}

	progress, err := s.progressService.Detail(goal.ID)
	if err != nil {
		return nil, err
	}

	return &model.GoalProgress{Goal: goal, Progress: progress}, nil
}

// Delete removes a goal according to the configured policy. Tasks are never
// left pointing at a deleted goal.
func (s *GoalService) Delete(goalID int64) error {
	if s.policy == DeleteRestrict {
		if _, err := s.repo.ByID(goalID); err != nil {
			return err
		}

		count, err := s.taskRepo.CountByGoal(goalID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrGoalHasTasks
		}

		return s.repo.Delete(goalID)
	}

	return s.repo.DeleteWithTasks(goalID)
}

func (s *GoalService) Policy() DeletePolicy {
	return s.policy
}
