package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/templui/goaltracker/internal/markdown"
	"github.com/templui/goaltracker/internal/repository"
	"github.com/templui/goaltracker/internal/service"
	"github.com/templui/goaltracker/internal/ui"
	"github.com/templui/goaltracker/internal/ui/pages"
	"github.com/templui/goaltracker/internal/validation"
)

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// userError returns the message to show for errors the user can fix and
// false for everything else.
func userError(err error) (string, bool) {
	var validationErr *validation.ValidationError
	var dateErr *validation.DateParseError

	switch {
	case errors.As(err, &validationErr):
		message := validationErr.Error()
		return strings.ToUpper(message[:1]) + message[1:], true
	case errors.As(err, &dateErr):
		return fmt.Sprintf("Deadline %q is not a valid date (use DD/MM/YYYY)", dateErr.Input), true
	case errors.Is(err, markdown.ErrInvalidPlan):
		return err.Error(), true
	case errors.Is(err, service.ErrGoalHasTasks):
		return "This goal still has tasks. Delete them first.", true
	default:
		return "", false
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrGoalNotFound) || errors.Is(err, repository.ErrTaskNotFound)
}

func notFound(w http.ResponseWriter, r *http.Request, message string) {
	if wantsJSON(r) {
		writeJSONError(w, http.StatusNotFound, message)
		return
	}
	ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound(message))
}

func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") || strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
