package service

import (
	"github.com/templui/goaltracker/internal/model"
	"github.com/templui/goaltracker/internal/repository"
)

// ProgressService derives completion from the current task rows on every
// call. Nothing is cached or stored.
type ProgressService struct {
	taskRepo repository.TaskRepository
}

func NewProgressService(taskRepo repository.TaskRepository) *ProgressService {
	return &ProgressService{taskRepo: taskRepo}
}

// Compute returns the goal's completion as a percentage in [0, 100].
// A goal without weighted tasks reports 0.
func (s *ProgressService) Compute(goalID int64) (int, error) {
	progress, err := s.Detail(goalID)
	if err != nil {
		return 0, err
	}
	return progress.Percent(), nil
}

func (s *ProgressService) Detail(goalID int64) (model.Progress, error) {
	return s.taskRepo.HourTotals(goalID)
}
