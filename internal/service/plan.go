package service

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/templui/goaltracker/internal/markdown"
	"github.com/templui/goaltracker/internal/model"
	"github.com/templui/goaltracker/internal/repository"
	"github.com/templui/goaltracker/internal/validation"
)

// PlanService creates a goal with its tasks from a markdown checklist.
type PlanService struct {
	parser      *markdown.Parser
	goalService *GoalService
	taskService *TaskService
	goalRepo    repository.GoalRepository
}

func NewPlanService(
	parser *markdown.Parser,
	goalService *GoalService,
	taskService *TaskService,
	goalRepo repository.GoalRepository,
) *PlanService {
	return &PlanService{
		parser:      parser,
		goalService: goalService,
		taskService: taskService,
		goalRepo:    goalRepo,
	}
}

// Import validates the whole plan before writing anything. Without an
// explicit hours target the goal gets the sum of its task hours, capped at
// validation.MaxHours.
func (s *PlanService) Import(source []byte) (*model.GoalProgress, error) {
	plan, err := s.parser.ParsePlan(source)
	if err != nil {
		return nil, err
	}

	if err := validatePlan(plan); err != nil {
		return nil, err
	}

	hours := plan.Hours
	if hours == "" {
		hours = strconv.Itoa(plannedHours(plan))
	}

	goal, err := s.goalService.Create(plan.Name, hours)
	if err != nil {
		return nil, err
	}

	for _, planned := range plan.Tasks {
		err := s.addTask(goal.ID, planned)
		if err != nil {
			// Rollback: remove the partly imported goal
			delErr := s.goalRepo.DeleteWithTasks(goal.ID)
			if delErr != nil {
				slog.Error("failed to delete goal during rollback", "error", delErr, "goal_id", goal.ID)
			}
			return nil, fmt.Errorf("failed to import task %q: %w", planned.Description, err)
		}
	}

	slog.Info("imported plan", "goal_id", goal.ID, "tasks", len(plan.Tasks))

	return s.goalService.WithProgress(goal.ID)
}

func (s *PlanService) addTask(goalID int64, planned markdown.PlannedTask) error {
	task, err := s.taskService.Create(goalID, planned.Description, planned.Hours, planned.Deadline)
	if err != nil {
		return err
	}

	if planned.Completed {
		_, err = s.taskService.SetCompleted(task.ID, true)
	}
	return err
}

func validatePlan(plan *markdown.Plan) error {
	if err := validation.ValidateName(plan.Name); err != nil {
		return err
	}

	if plan.Hours != "" {
		if _, err := validation.ParseHours(plan.Hours); err != nil {
			return err
		}
	} else if len(plan.Tasks) == 0 {
		return &validation.ValidationError{Field: "hours", Message: "is required when the plan has no tasks"}
	}

	for _, task := range plan.Tasks {
		if err := validation.ValidateDescription(task.Description); err != nil {
			return err
		}
		if _, err := validation.ParseHours(task.Hours); err != nil {
			return err
		}
		if _, err := validation.ParseDeadline(task.Deadline); err != nil {
			return err
		}
	}

	return nil
}

// plannedHours assumes the plan already passed validatePlan.
func plannedHours(plan *markdown.Plan) int {
	total := 0
	for _, task := range plan.Tasks {
		hours, _ := validation.ParseHours(task.Hours)
		total += hours
	}
	return min(total, validation.MaxHours)
}
