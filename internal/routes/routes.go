package routes

import (
	"io/fs"
	"net/http"

	goaltracker "github.com/templui/goaltracker"
	"github.com/templui/goaltracker/internal/app"
	"github.com/templui/goaltracker/internal/handler"
	"github.com/templui/goaltracker/internal/middleware"
	"github.com/templui/goaltracker/internal/validation"
)

// maxBodySize fits the largest plan upload plus multipart overhead.
var maxBodySize = validation.PlanConstraints.MaxSize + 64<<10

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	goal := handler.NewGoalHandler(app.GoalService, app.PlanService, app.SnapshotService)
	task := handler.NewTaskHandler(app.GoalService, app.TaskService, app.Parser)
	calendar := handler.NewCalendarHandler(app.CalendarService)
	api := handler.NewAPIHandler(app.GoalService, app.TaskService, app.CalendarService)

	mux := http.NewServeMux()

	// Static files
	sub, _ := fs.Sub(goaltracker.AssetsFS, "assets")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))
	mux.HandleFunc("GET /healthz", home.Health)

	// Heavy endpoints: parsing uploads and writing snapshots
	heavy := middleware.RateLimit(app.Limiter)

	// Pages
	mux.HandleFunc("GET /{$}", home.HomePage)
	mux.HandleFunc("GET /goals", goal.GoalsPage)
	mux.HandleFunc("GET /goals/export", goal.Export)
	mux.HandleFunc("GET /goals/{id}", task.GoalPage)
	mux.HandleFunc("GET /calendar", calendar.CalendarPage)

	// Actions
	mux.HandleFunc("POST /goals", goal.Create)
	mux.HandleFunc("POST /goals/import", heavy(goal.Import))
	mux.HandleFunc("POST /goals/snapshot", heavy(goal.Snapshot))
	mux.HandleFunc("POST /goals/{id}/delete", goal.Delete)
	mux.HandleFunc("POST /goals/{id}/tasks", task.Create)
	mux.HandleFunc("POST /tasks/{id}/completed", task.SetCompleted)
	mux.HandleFunc("POST /tasks/{id}/delete", task.Delete)

	// JSON API (read only)
	mux.HandleFunc("GET /api/goals", api.Goals)
	mux.HandleFunc("GET /api/goals/{id}/tasks", api.Tasks)
	mux.HandleFunc("GET /api/calendar/{date}", api.TasksOnDate)

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.MaxBodySize(maxBodySize), // before CSRF, which parses the form
		middleware.Config(app.Cfg), // Config before CSRF (cookie Secure flag depends on APP_ENV)
		middleware.NonceMiddleware, // must be before SecurityHeaders
		middleware.SecurityHeaders,
		middleware.CSRFProtection,
		middleware.WithURLPath,
	)

	return handler
}
