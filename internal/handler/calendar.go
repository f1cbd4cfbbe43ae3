package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/templui/goaltracker/internal/model"
	"github.com/templui/goaltracker/internal/service"
	"github.com/templui/goaltracker/internal/ui"
	"github.com/templui/goaltracker/internal/ui/pages"
	"github.com/templui/goaltracker/internal/validation"
)

type CalendarHandler struct {
	calendarService *service.CalendarService
	now             func() time.Time
}

func NewCalendarHandler(calendarService *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
		now:             time.Now,
	}
}

// CalendarPage shows the month of ?date= (default today) and the tasks due
// on that exact day.
func (h *CalendarHandler) CalendarPage(w http.ResponseWriter, r *http.Request) {
	today := model.DateOf(h.now())
	page := pages.CalendarPage{Selected: today, Today: today}
	status := http.StatusOK

	if raw := r.URL.Query().Get("date"); raw != "" {
		selected, err := validation.ParseDay(raw)
		if err != nil {
			status = http.StatusBadRequest
			page.Error = "Invalid date " + raw + ", showing today instead."
		} else {
			page.Selected = selected
		}
	}

	due, err := h.calendarService.TasksOnDate(page.Selected)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to get tasks on date", "error", err, "date", page.Selected.String())
		http.Error(w, "Failed to load calendar", http.StatusInternalServerError)
		return
	}
	page.Due = due

	ui.RenderStatus(w, r, status, pages.Calendar(page))
}
