package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/templui/goaltracker/internal/markdown"
	"github.com/templui/goaltracker/internal/service"
	"github.com/templui/goaltracker/internal/ui"
	"github.com/templui/goaltracker/internal/ui/pages"
)

type TaskHandler struct {
	goalService *service.GoalService
	taskService *service.TaskService
	parser      *markdown.Parser
}

func NewTaskHandler(goalService *service.GoalService, taskService *service.TaskService, parser *markdown.Parser) *TaskHandler {
	return &TaskHandler{
		goalService: goalService,
		taskService: taskService,
		parser:      parser,
	}
}

func (h *TaskHandler) GoalPage(w http.ResponseWriter, r *http.Request) {
	goalID, ok := pathID(r, "id")
	if !ok {
		notFound(w, r, "Goal not found")
		return
	}

	h.renderGoal(w, r, http.StatusOK, goalID, pages.GoalPage{})
}

func (h *TaskHandler) renderGoal(w http.ResponseWriter, r *http.Request, status int, goalID int64, page pages.GoalPage) {
	goal, err := h.goalService.WithProgress(goalID)
	if err != nil {
		if isNotFound(err) {
			notFound(w, r, "Goal not found")
			return
		}
		slog.ErrorContext(r.Context(), "failed to get goal", "error", err, "goal_id", goalID)
		http.Error(w, "Failed to load goal", http.StatusInternalServerError)
		return
	}

	tasks, err := h.taskService.Tasks(goalID)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to get tasks", "error", err, "goal_id", goalID)
		http.Error(w, "Failed to load tasks", http.StatusInternalServerError)
		return
	}

	page.Goal = goal
	page.Tasks = make([]pages.TaskRow, 0, len(tasks))
	for _, task := range tasks {
		html, err := h.parser.Render([]byte(task.Description))
		if err != nil {
			slog.WarnContext(r.Context(), "failed to render task description", "error", err, "task_id", task.ID)
			html = []byte(templ.EscapeString(task.Description))
		}
		page.Tasks = append(page.Tasks, pages.TaskRow{Task: task, DescriptionHTML: string(html)})
	}

	ui.RenderStatus(w, r, status, pages.Goal(page))
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	goalID, ok := pathID(r, "id")
	if !ok {
		notFound(w, r, "Goal not found")
		return
	}

	form := pages.TaskForm{
		Description: r.FormValue("description"),
		Hours:       r.FormValue("hours"),
		Deadline:    r.FormValue("deadline"),
	}

	task, err := h.taskService.Create(goalID, form.Description, form.Hours, form.Deadline)
	if err != nil {
		if isNotFound(err) {
			notFound(w, r, "Goal not found")
			return
		}
		if message, ok := userError(err); ok {
			form.Error = message
			h.renderGoal(w, r, http.StatusUnprocessableEntity, goalID, pages.GoalPage{Form: form})
			return
		}

		slog.ErrorContext(r.Context(), "failed to create task", "error", err, "goal_id", goalID)
		http.Error(w, "Failed to create task", http.StatusInternalServerError)
		return
	}

	slog.InfoContext(r.Context(), "task created", "task_id", task.ID, "goal_id", goalID)
	http.Redirect(w, r, fmt.Sprintf("/goals/%d", goalID), http.StatusSeeOther)
}

type taskProgressResponse struct {
	TaskID  int64 `json:"task_id"`
	GoalID  int64 `json:"goal_id"`
	Percent int   `json:"percent"`
}

func (h *TaskHandler) SetCompleted(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(r, "id")
	if !ok {
		notFound(w, r, "Task not found")
		return
	}

	completed, err := strconv.ParseBool(r.FormValue("completed"))
	if err != nil {
		http.Error(w, "completed must be true or false", http.StatusBadRequest)
		return
	}

	task, err := h.taskService.ByID(taskID)
	if err != nil {
		h.taskError(w, r, err, taskID)
		return
	}

	percent, err := h.taskService.SetCompleted(taskID, completed)
	if err != nil {
		h.taskError(w, r, err, taskID)
		return
	}

	h.respondProgress(w, r, task.GoalID, taskProgressResponse{TaskID: taskID, GoalID: task.GoalID, Percent: percent})
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(r, "id")
	if !ok {
		notFound(w, r, "Task not found")
		return
	}

	task, err := h.taskService.ByID(taskID)
	if err != nil {
		h.taskError(w, r, err, taskID)
		return
	}

	percent, err := h.taskService.Delete(taskID)
	if err != nil {
		h.taskError(w, r, err, taskID)
		return
	}

	h.respondProgress(w, r, task.GoalID, taskProgressResponse{TaskID: taskID, GoalID: task.GoalID, Percent: percent})
}

// respondProgress answers JSON clients with the new percentage and sends
// browsers back to the goal page.
func (h *TaskHandler) respondProgress(w http.ResponseWriter, r *http.Request, goalID int64, resp taskProgressResponse) {
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, resp)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/goals/%d", goalID), http.StatusSeeOther)
}

func (h *TaskHandler) taskError(w http.ResponseWriter, r *http.Request, err error, taskID int64) {
	if isNotFound(err) {
		notFound(w, r, "Task not found")
		return
	}
	slog.ErrorContext(r.Context(), "failed to update task", "error", err, "task_id", taskID)
	http.Error(w, "Failed to update task", http.StatusInternalServerError)
}
