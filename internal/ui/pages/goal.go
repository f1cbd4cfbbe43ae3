package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/templui/goaltracker/internal/model"
	"github.com/templui/goaltracker/internal/ui"
	"github.com/templui/goaltracker/internal/ui/components"
)

type TaskForm struct {
	Description string
	Hours       string
	Deadline    string
	Error       string
}

// TaskRow is a task with its description already rendered from markdown.
type TaskRow struct {
	Task            *model.Task
	DescriptionHTML string
}

type GoalPage struct {
	Goal  *model.GoalProgress
	Tasks []TaskRow
	Form  TaskForm
	Error string
}

func Goal(page GoalPage) templ.Component {
	return components.Layout(page.Goal.Goal.Name, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		goal := page.Goal.Goal

		out := ui.NewWriter(w)
		out.Raw(`<p><a href="/goals">&larr; All goals</a></p><h1>`)
		out.Text(goal.Name)
		out.Raw(fmt.Sprintf(`</h1><p class="muted">Target %d h</p>`, goal.Hours))
		out.Component(ctx, components.ProgressBar(page.Goal.Progress))
		out.Component(ctx, components.Alert(page.Error, false))

		out.Raw(`<section class="card">`)
		if len(page.Tasks) == 0 {
			out.Raw(`<p class="muted">No tasks yet.</p>`)
		} else {
			out.Raw(`<table class="table"><thead><tr><th>Task</th><th>Hours</th><th>Deadline</th><th></th><th></th></tr></thead><tbody>`)
			for _, row := range page.Tasks {
				writeTaskRow(ctx, out, row)
			}
			out.Raw(`</tbody></table>`)
		}
		out.Raw(`</section>`)

		out.Raw(`<section class="card"><h2>New task</h2>`)
		out.Component(ctx, components.Alert(page.Form.Error, false))
		out.Raw(fmt.Sprintf(`<form method="post" action="/goals/%d/tasks" class="row">`, goal.ID))
		out.Component(ctx, components.CSRFField())
		out.Raw(`<input class="input grow" name="description" placeholder="Description" required value="`)
		out.Text(page.Form.Description)
		out.Raw(`"><input class="input" name="hours" placeholder="Hours" inputmode="numeric" required value="`)
		out.Text(page.Form.Hours)
		out.Raw(`"><input class="input" name="deadline" placeholder="DD/MM/YYYY" value="`)
		out.Text(page.Form.Deadline)
		out.Raw(`">`)
		out.Component(ctx, components.Button(components.ButtonProps{Label: "Add task"}))
		out.Raw(`</form></section>`)

		return out.Err()
	}))
}

func writeTaskRow(ctx context.Context, out *ui.Writer, row TaskRow) {
	task := row.Task

	class := "markdown"
	if task.Completed {
		class = components.Class(class, "done")
	}
	out.Raw(`<tr><td class="` + class + `">`)
	// rendered by the markdown parser, which drops raw HTML
	out.Raw(row.DescriptionHTML)
	out.Raw(fmt.Sprintf(`</td><td>%d</td><td>`, task.Hours))
	if task.Deadline != nil {
		out.Raw(`<a href="/calendar?date=` + task.Deadline.String() + `">`)
		out.Text(task.Deadline.Time().Format("02/01/2006"))
		out.Raw(`</a>`)
	}
	out.Raw(`</td><td>`)

	// a hidden field carries the target state so the form is a plain POST
	out.Raw(fmt.Sprintf(`<form method="post" action="/tasks/%d/completed">`, task.ID))
	out.Component(ctx, components.CSRFField())
	if task.Completed {
		out.Raw(`<input type="hidden" name="completed" value="false">`)
		out.Component(ctx, components.Button(components.ButtonProps{Label: "Undo", Variant: components.ButtonOutline, Small: true}))
	} else {
		out.Raw(`<input type="hidden" name="completed" value="true">`)
		out.Component(ctx, components.Button(components.ButtonProps{Label: "Done", Small: true}))
	}
	out.Raw(`</form></td><td>`)
	out.Component(ctx, components.PostButton(fmt.Sprintf("/tasks/%d/delete", task.ID), "Delete", components.ButtonDanger, "Delete this task?"))
	out.Raw(`</td></tr>`)
}
