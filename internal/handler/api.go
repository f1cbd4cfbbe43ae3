package handler

import (
	"log/slog"
	"net/http"

	"github.com/templui/goaltracker/internal/service"
	"github.com/templui/goaltracker/internal/validation"
)

type APIHandler struct {
	goalService     *service.GoalService
	taskService     *service.TaskService
	calendarService *service.CalendarService
}

func NewAPIHandler(
	goalService *service.GoalService,
	taskService *service.TaskService,
	calendarService *service.CalendarService,
) *APIHandler {
	return &APIHandler{
		goalService:     goalService,
		taskService:     taskService,
		calendarService: calendarService,
	}
}

type goalResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Hours      int    `json:"hours"`
	TotalHours int64  `json:"total_hours"`
	DoneHours  int64  `json:"done_hours"`
	Percent    int    `json:"percent"`
}

func (h *APIHandler) Goals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.GoalsWithProgress()
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to get goals", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load goals")
		return
	}

	resp := make([]goalResponse, 0, len(goals))
	for _, goal := range goals {
		resp = append(resp, goalResponse{
			ID:         goal.Goal.ID,
			Name:       goal.Goal.Name,
			Hours:      goal.Goal.Hours,
			TotalHours: goal.Progress.TotalHours,
			DoneHours:  goal.Progress.DoneHours,
			Percent:    goal.Percent(),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *APIHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	goalID, ok := pathID(r, "id")
	if !ok {
		writeJSONError(w, http.StatusNotFound, "goal not found")
		return
	}

	tasks, err := h.taskService.Tasks(goalID)
	if err != nil {
		if isNotFound(err) {
			writeJSONError(w, http.StatusNotFound, "goal not found")
			return
		}
		slog.ErrorContext(r.Context(), "failed to get tasks", "error", err, "goal_id", goalID)
		writeJSONError(w, http.StatusInternalServerError, "failed to load tasks")
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (h *APIHandler) TasksOnDate(w http.ResponseWriter, r *http.Request) {
	date, err := validation.ParseDay(r.PathValue("date"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "date must be YYYY-MM-DD or DD/MM/YYYY")
		return
	}

	due, err := h.calendarService.TasksOnDate(date)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to get tasks on date", "error", err, "date", date.String())
		writeJSONError(w, http.StatusInternalServerError, "failed to load tasks")
		return
	}

	writeJSON(w, http.StatusOK, due)
}
