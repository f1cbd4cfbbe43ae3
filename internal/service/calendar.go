package service

import (
	"github.com/templui/goaltracker/internal/model"
	"github.com/templui/goaltracker/internal/repository"
)

type CalendarService struct {
	taskRepo repository.TaskRepository
}

func NewCalendarService(taskRepo repository.TaskRepository) *CalendarService {
	return &CalendarService{taskRepo: taskRepo}
}

// TasksOnDate returns the tasks whose deadline is exactly the given date.
// No match yields an empty slice.
func (s *CalendarService) TasksOnDate(date model.Date) ([]*model.DueTask, error) {
	return s.taskRepo.ByDeadline(date)
}
