package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/templui/goaltracker/internal/service"
	"github.com/templui/goaltracker/internal/ui"
	"github.com/templui/goaltracker/internal/ui/pages"
	"github.com/templui/goaltracker/internal/validation"
)

type GoalHandler struct {
	goalService     *service.GoalService
	planService     *service.PlanService
	snapshotService *service.SnapshotService
}

func NewGoalHandler(
	goalService *service.GoalService,
	planService *service.PlanService,
	snapshotService *service.SnapshotService,
) *GoalHandler {
	return &GoalHandler{
		goalService:     goalService,
		planService:     planService,
		snapshotService: snapshotService,
	}
}

func (h *GoalHandler) GoalsPage(w http.ResponseWriter, r *http.Request) {
	h.renderGoals(w, r, http.StatusOK, pages.GoalsPage{})
}

// renderGoals loads the goal list into page and renders it with status.
func (h *GoalHandler) renderGoals(w http.ResponseWriter, r *http.Request, status int, page pages.GoalsPage) {
	goals, err := h.goalService.GoalsWithProgress()
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to get goals", "error", err)
		http.Error(w, "Failed to load goals", http.StatusInternalServerError)
		return
	}

	page.Goals = goals
	ui.RenderStatus(w, r, status, pages.Goals(page))
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	hours := r.FormValue("hours")

	goal, err := h.goalService.Create(name, hours)
	if err != nil {
		if message, ok := userError(err); ok {
			h.renderGoals(w, r, http.StatusUnprocessableEntity, pages.GoalsPage{
				Form: pages.GoalForm{Name: name, Hours: hours, Error: message},
			})
			return
		}

		slog.ErrorContext(r.Context(), "failed to create goal", "error", err)
		http.Error(w, "Failed to create goal", http.StatusInternalServerError)
		return
	}

	slog.InfoContext(r.Context(), "goal created", "goal_id", goal.ID)
	http.Redirect(w, r, "/goals", http.StatusSeeOther)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	goalID, ok := pathID(r, "id")
	if !ok {
		notFound(w, r, "Goal not found")
		return
	}

	err := h.goalService.Delete(goalID)
	if err != nil {
		if isNotFound(err) {
			notFound(w, r, "Goal not found")
			return
		}
		if errors.Is(err, service.ErrGoalHasTasks) {
			message, _ := userError(err)
			h.renderGoals(w, r, http.StatusConflict, pages.GoalsPage{Error: message})
			return
		}

		slog.ErrorContext(r.Context(), "failed to delete goal", "error", err, "goal_id", goalID)
		http.Error(w, "Failed to delete goal", http.StatusInternalServerError)
		return
	}

	slog.InfoContext(r.Context(), "goal deleted", "goal_id", goalID, "policy", h.goalService.Policy())
	http.Redirect(w, r, "/goals", http.StatusSeeOther)
}

func (h *GoalHandler) Export(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshotService.Export()
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to export goals", "error", err)
		http.Error(w, "Failed to export goals", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=goals-export.json")

	err = json.NewEncoder(w).Encode(snapshot)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to encode goals", "error", err)
	}
}

// Import creates a goal from an uploaded markdown plan.
func (h *GoalHandler) Import(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("plan")
	if err != nil {
		h.renderGoals(w, r, http.StatusBadRequest, pages.GoalsPage{Error: "Choose a markdown file to import."})
		return
	}
	defer file.Close()

	err = validation.ValidateFile("plan", header, validation.PlanConstraints)
	if errors.Is(err, validation.ErrFileTooLarge) {
		h.renderGoals(w, r, http.StatusRequestEntityTooLarge, pages.GoalsPage{Error: "The plan is too large (max 1 MB)."})
		return
	}
	if message, ok := userError(err); ok {
		h.renderGoals(w, r, http.StatusUnprocessableEntity, pages.GoalsPage{Error: message})
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to validate plan upload", "error", err)
		http.Error(w, "Failed to read plan", http.StatusBadRequest)
		return
	}

	source, err := io.ReadAll(io.LimitReader(file, validation.PlanConstraints.MaxSize+1))
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to read plan", "error", err)
		http.Error(w, "Failed to read plan", http.StatusBadRequest)
		return
	}
	if int64(len(source)) > validation.PlanConstraints.MaxSize {
		h.renderGoals(w, r, http.StatusRequestEntityTooLarge, pages.GoalsPage{Error: "The plan is too large (max 1 MB)."})
		return
	}

	imported, err := h.planService.Import(source)
	if err != nil {
		if message, ok := userError(err); ok {
			h.renderGoals(w, r, http.StatusUnprocessableEntity, pages.GoalsPage{Error: message})
			return
		}

		slog.ErrorContext(r.Context(), "failed to import plan", "error", err)
		http.Error(w, "Failed to import plan", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/goals/%d", imported.Goal.ID), http.StatusSeeOther)
}

func (h *GoalHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	location, err := h.snapshotService.Save()
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to save snapshot", "error", err)
		h.renderGoals(w, r, http.StatusInternalServerError, pages.GoalsPage{Error: "Failed to save snapshot."})
		return
	}

	h.renderGoals(w, r, http.StatusOK, pages.GoalsPage{Notice: "Snapshot saved: " + location})
}
