package service

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/goaltracker/internal/db"
	"github.com/templui/goaltracker/internal/markdown"
	"github.com/templui/goaltracker/internal/model"
	"github.com/templui/goaltracker/internal/repository"
	"github.com/templui/goaltracker/internal/storage"
	"github.com/templui/goaltracker/internal/validation"
)

type services struct {
	db       *sqlx.DB
	goals    *GoalService
	tasks    *TaskService
	progress *ProgressService
	calendar *CalendarService
	plans    *PlanService
	snapshot *SnapshotService
	dataDir  string
}

func newServices(t *testing.T, policy DeletePolicy) *services {
	t.Helper()

	dir := t.TempDir()
	database, err := db.Init("sqlite", filepath.Join(dir, "goals.db")+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })
	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	store, err := storage.NewLocalStorage(filepath.Join(dir, "snapshots-root"))
	require.NoError(t, err)

	goalRepo := repository.NewGoalRepository(database)
	taskRepo := repository.NewTaskRepository(database)
	progress := NewProgressService(taskRepo)
	goals := NewGoalService(goalRepo, taskRepo, progress, policy)
	tasks := NewTaskService(taskRepo, goalRepo, progress)

	return &services{
		db:       database,
		goals:    goals,
		tasks:    tasks,
		progress: progress,
		calendar: NewCalendarService(taskRepo),
		plans:    NewPlanService(markdown.NewParser(), goals, tasks, goalRepo),
		snapshot: NewSnapshotService(goalRepo, taskRepo, progress, store),
		dataDir:  filepath.Join(dir, "snapshots-root"),
	}
}

func (s *services) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func TestLearnXScenario(t *testing.T) {
	s := newServices(t, DeleteCascade)

	goal, err := s.goals.Create("Learn X", "10")
	require.NoError(t, err)

	_, err = s.tasks.Create(goal.ID, "read", "4", "")
	require.NoError(t, err)
	practice, err := s.tasks.Create(goal.ID, "practice", "6", "")
	require.NoError(t, err)

	percent, err := s.tasks.SetCompleted(practice.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 60, percent)

	percent, err = s.progress.Compute(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, percent)

	detail, err := s.progress.Detail(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Progress{TotalHours: 10, DoneHours: 6}, detail)
}

func TestProgressWithoutTasksIsZero(t *testing.T) {
	s := newServices(t, DeleteCascade)

	goal, err := s.goals.Create("Empty", "5")
	require.NoError(t, err)

	percent, err := s.progress.Compute(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, percent)
}

func TestProgressNeverDecreasesWhenCompletingMore(t *testing.T) {
	s := newServices(t, DeleteCascade)

	goal, err := s.goals.Create("Monotonic", "20")
	require.NoError(t, err)

	var ids []int64
	for i, hours := range []int{3, 7, 1, 9} {
		task, err := s.tasks.Create(goal.ID, "step "+strconv.Itoa(i), strconv.Itoa(hours), "")
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}

	previous := 0
	for _, id := range ids {
		percent, err := s.tasks.SetCompleted(id, true)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, percent, previous)
		assert.LessOrEqual(t, percent, 100)
		previous = percent
	}
	assert.Equal(t, 100, previous)
}

func TestSetCompletedCanBeUndone(t *testing.T) {
	s := newServices(t, DeleteCascade)

	goal, err := s.goals.Create("Toggle", "2")
	require.NoError(t, err)
	task, err := s.tasks.Create(goal.ID, "only", "2", "")
	require.NoError(t, err)

	percent, err := s.tasks.SetCompleted(task.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 100, percent)

	percent, err = s.tasks.SetCompleted(task.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 0, percent)

	_, err = s.tasks.SetCompleted(999, true)
	assert.True(t, errors.Is(err, repository.ErrTaskNotFound))
}

func TestDeleteTaskRecomputesProgress(t *testing.T) {
	s := newServices(t, DeleteCascade)

	goal, err := s.goals.Create("Shrink", "10")
	require.NoError(t, err)
	done, err := s.tasks.Create(goal.ID, "done", "5", "")
	require.NoError(t, err)
	open, err := s.tasks.Create(goal.ID, "open", "5", "")
	require.NoError(t, err)
	_, err = s.tasks.SetCompleted(done.ID, true)
	require.NoError(t, err)

	percent, err := s.tasks.Delete(open.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, percent)

	_, err = s.tasks.Delete(open.ID)
	assert.True(t, errors.Is(err, repository.ErrTaskNotFound))
}

func TestCreateGoalRoundTrip(t *testing.T) {
	s := newServices(t, DeleteCascade)

	created, err := s.goals.Create("  Write a book  ", "300")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	goals, err := s.goals.Goals()
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, &model.Goal{ID: created.ID, Name: "Write a book", Hours: 300}, goals[0])
}

func TestCreateGoalRejectsInvalidInput(t *testing.T) {
	s := newServices(t, DeleteCascade)

	tests := []struct {
		name, goalName, hours, field string
	}{
		{"empty name", "", "5", "name"},
		{"zero hours", "X", "0", "hours"},
		{"negative hours", "X", "-3", "hours"},
		{"not a number", "X", "five", "hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.goals.Create(tt.goalName, tt.hours)

			var validationErr *validation.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}

	assert.Equal(t, 0, s.count(t, "goals"))
}

func TestCreateTaskRoundTrip(t *testing.T) {
	s := newServices(t, DeleteCascade)

	goal, err := s.goals.Create("Learn X", "10")
	require.NoError(t, err)

	created, err := s.tasks.Create(goal.ID, "read", "4", "01/01/2030")
	require.NoError(t, err)
	require.NotNil(t, created.Deadline)
	assert.Equal(t, model.NewDate(2030, time.January, 1), *created.Deadline)

	tasks, err := s.tasks.Tasks(goal.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, created, tasks[0])
}

func TestCreateTaskRejectsInvalidInput(t *testing.T) {
	s := newServices(t, DeleteCascade)

	goal, err := s.goals.Create("Learn X", "10")
	require.NoError(t, err)

	_, err = s.tasks.Create(goal.ID, "read", "4", "31/02/2030")
	var dateErr *validation.DateParseError
	assert.True(t, errors.As(err, &dateErr))

	_, err = s.tasks.Create(goal.ID, "read", "4", "tomorrow")
	assert.True(t, errors.As(err, &dateErr))

	_, err = s.tasks.Create(goal.ID, "", "4", "")
	var validationErr *validation.ValidationError
	assert.True(t, errors.As(err, &validationErr))

	_, err = s.tasks.Create(goal.ID, "read", "0", "")
	assert.True(t, errors.As(err, &validationErr))

	_, err = s.tasks.Create(goal.ID+100, "read", "4", "")
	assert.True(t, errors.Is(err, repository.ErrGoalNotFound))

	assert.Equal(t, 0, s.count(t, "tasks"))
}

func TestTasksOnDateIsExact(t *testing.T) {
	s := newServices(t, DeleteCascade)

	goal, err := s.goals.Create("Learn X", "10")
	require.NoError(t, err)

	newYear, err := s.tasks.Create(goal.ID, "party", "2", "01/01/2030")
	require.NoError(t, err)
	_, err = s.tasks.Create(goal.ID, "recover", "1", "02012030")
	require.NoError(t, err)
	_, err = s.tasks.Create(goal.ID, "someday", "1", "")
	require.NoError(t, err)

	due, err := s.calendar.TasksOnDate(model.NewDate(2030, time.January, 1))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, newYear.ID, due[0].TaskID)
	assert.Equal(t, "party", due[0].Description)
	assert.False(t, due[0].Completed)

	due, err = s.calendar.TasksOnDate(model.NewDate(2030, time.January, 2))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "recover", due[0].Description)

	due, err = s.calendar.TasksOnDate(model.NewDate(2031, time.January, 1))
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestDeleteGoalCascade(t *testing.T) {
	s := newServices(t, DeleteCascade)

	goal, err := s.goals.Create("Learn X", "10")
	require.NoError(t, err)
	_, err = s.tasks.Create(goal.ID, "read", "4", "")
	require.NoError(t, err)

	require.NoError(t, s.goals.Delete(goal.ID))
	assert.Equal(t, 0, s.count(t, "goals"))
	assert.Equal(t, 0, s.count(t, "tasks"))

	assert.True(t, errors.Is(s.goals.Delete(goal.ID), repository.ErrGoalNotFound))
}

func TestDeleteGoalRestrict(t *testing.T) {
	s := newServices(t, DeleteRestrict)

	goal, err := s.goals.Create("Learn X", "10")
	require.NoError(t, err)
	task, err := s.tasks.Create(goal.ID, "read", "4", "")
	require.NoError(t, err)

	assert.True(t, errors.Is(s.goals.Delete(goal.ID), ErrGoalHasTasks))
	assert.Equal(t, 1, s.count(t, "goals"))

	_, err = s.tasks.Delete(task.ID)
	require.NoError(t, err)
	require.NoError(t, s.goals.Delete(goal.ID))
	assert.Equal(t, 0, s.count(t, "goals"))

	assert.True(t, errors.Is(s.goals.Delete(goal.ID), repository.ErrGoalNotFound))
}

func TestParseDeletePolicy(t *testing.T) {
	policy, err := ParseDeletePolicy("")
	require.NoError(t, err)
	assert.Equal(t, DeleteCascade, policy)

	policy, err = ParseDeletePolicy(" Restrict ")
	require.NoError(t, err)
	assert.Equal(t, DeleteRestrict, policy)

	_, err = ParseDeletePolicy("orphan")
	assert.True(t, errors.Is(err, ErrUnknownDeletePolicy))
}

func TestGoalsWithProgress(t *testing.T) {
	s := newServices(t, DeleteCascade)

	first, err := s.goals.Create("First", "1")
	require.NoError(t, err)
	second, err := s.goals.Create("Second", "1")
	require.NoError(t, err)
	task, err := s.tasks.Create(second.ID, "only", "3", "")
	require.NoError(t, err)
	_, err = s.tasks.SetCompleted(task.ID, true)
	require.NoError(t, err)

	list, err := s.goals.GoalsWithProgress()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].Goal.ID)
	assert.Equal(t, 0, list[0].Percent())
	assert.Equal(t, second.ID, list[1].Goal.ID)
	assert.Equal(t, 100, list[1].Percent())
}

func TestPlanImport(t *testing.T) {
	s := newServices(t, DeleteCascade)

	imported, err := s.plans.Import([]byte(`---
name: Learn X
---
- [ ] read (4h) due 01/01/2030
- [x] practice (6h)
`))
	require.NoError(t, err)

	assert.Equal(t, "Learn X", imported.Goal.Name)
	assert.Equal(t, 10, imported.Goal.Hours)
	assert.Equal(t, 60, imported.Percent())

	due, err := s.calendar.TasksOnDate(model.NewDate(2030, time.January, 1))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "read", due[0].Description)
}

func TestPlanImportCapsDerivedTarget(t *testing.T) {
	s := newServices(t, DeleteCascade)

	source := []byte("# Long haul\n\n")
	for i := 1; i <= 11; i++ {
		source = append(source, "- [ ] step "+strconv.Itoa(i)+" (10000h)\n"...)
	}

	imported, err := s.plans.Import(source)
	require.NoError(t, err)

	assert.Equal(t, validation.MaxHours, imported.Goal.Hours)
	assert.Equal(t, int64(110000), imported.Progress.TotalHours)
	assert.Equal(t, 11, s.count(t, "tasks"))
}

func TestPlanImportWritesNothingWhenInvalid(t *testing.T) {
	s := newServices(t, DeleteCascade)

	_, err := s.plans.Import([]byte(`# Learn X

- [ ] read (4h) due 45/13/2030
`))
	var dateErr *validation.DateParseError
	assert.True(t, errors.As(err, &dateErr))

	_, err = s.plans.Import([]byte(`- [ ] read (4h)`))
	var validationErr *validation.ValidationError
	assert.True(t, errors.As(err, &validationErr))

	_, err = s.plans.Import([]byte(`# Learn X

- [ ] read
`))
	assert.True(t, errors.Is(err, markdown.ErrInvalidPlan))

	assert.Equal(t, 0, s.count(t, "goals"))
	assert.Equal(t, 0, s.count(t, "tasks"))
}

func TestSnapshotSave(t *testing.T) {
	s := newServices(t, DeleteCascade)
	s.snapshot.now = func() time.Time { return time.Date(2030, time.January, 1, 12, 0, 0, 0, time.UTC) }

	goal, err := s.goals.Create("Learn X", "10")
	require.NoError(t, err)
	_, err = s.tasks.Create(goal.ID, "read", "4", "01/01/2030")
	require.NoError(t, err)

	location, err := s.snapshot.Save()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.dataDir, "snapshots"), filepath.Dir(location))
	assert.Contains(t, filepath.Base(location), "20300101T120000Z-")

	data, err := os.ReadFile(location)
	require.NoError(t, err)

	var snapshot model.Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))
	require.Len(t, snapshot.Goals, 1)
	assert.Equal(t, "Learn X", snapshot.Goals[0].Name)
	require.Len(t, snapshot.Goals[0].Tasks, 1)
	assert.Equal(t, model.NewDate(2030, time.January, 1), *snapshot.Goals[0].Tasks[0].Deadline)
}
