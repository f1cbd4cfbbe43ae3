package pages

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/goaltracker/internal/model"
)

func render(t *testing.T, c interface {
	Render(context.Context, io.Writer) error
}) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestGoalsEscapesNames(t *testing.T) {
	html := render(t, Goals(GoalsPage{
		Goals: []*model.GoalProgress{{
			Goal:     &model.Goal{ID: 7, Name: "<b>Learn X</b>", Hours: 10},
			Progress: model.Progress{TotalHours: 10, DoneHours: 6},
		}},
	}))

	assert.Contains(t, html, "&lt;b&gt;Learn X&lt;/b&gt;")
	assert.NotContains(t, html, "<b>Learn X</b>")
	assert.Contains(t, html, `href="/goals/7"`)
	assert.Contains(t, html, "60%")
}

func TestGoalShowsTasks(t *testing.T) {
	deadline := model.NewDate(2030, time.January, 1)
	html := render(t, Goal(GoalPage{
		Goal: &model.GoalProgress{Goal: &model.Goal{ID: 1, Name: "Learn X", Hours: 10}},
		Tasks: []TaskRow{{
			Task:            &model.Task{ID: 3, GoalID: 1, Description: "read", Hours: 4, Deadline: &deadline},
			DescriptionHTML: "<p>read</p>",
		}},
		Form: TaskForm{Deadline: "99/99/9999", Error: "invalid deadline"},
	}))

	assert.Contains(t, html, `<p>read</p>`)
	assert.Contains(t, html, `href="/calendar?date=2030-01-01"`)
	assert.Contains(t, html, "01/01/2030")
	assert.Contains(t, html, `action="/tasks/3/completed"`)
	assert.Contains(t, html, `value="99/99/9999"`)
	assert.Contains(t, html, "invalid deadline")
}

func TestMonthGrid(t *testing.T) {
	// January 2030 starts on a Tuesday and ends on a Thursday.
	weeks := monthGrid(model.NewDate(2030, time.January, 1))

	require.Len(t, weeks, 5)
	assert.Equal(t, model.NewDate(2029, time.December, 31), weeks[0][0])
	assert.Equal(t, model.NewDate(2030, time.February, 3), weeks[4][6])

	// February 2027 fills exactly four weeks.
	weeks = monthGrid(model.NewDate(2027, time.February, 1))
	require.Len(t, weeks, 4)
	assert.Equal(t, model.NewDate(2027, time.February, 28), weeks[3][6])
}

func TestCalendarListsDueTasks(t *testing.T) {
	html := render(t, Calendar(CalendarPage{
		Selected: model.NewDate(2030, time.January, 1),
		Today:    model.NewDate(2029, time.December, 24),
		Due: []*model.DueTask{
			{TaskID: 1, GoalID: 2, GoalName: "Learn X", Description: "party", Completed: true},
		},
	}))

	assert.Contains(t, html, "January 2030")
	assert.Contains(t, html, `href="/calendar?date=2029-12-01"`)
	assert.Contains(t, html, `href="/calendar?date=2030-02-01"`)
	assert.Contains(t, html, `<li class="done">party`)
	assert.Contains(t, html, `class="selected"`)
}
