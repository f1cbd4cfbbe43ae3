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

// GoalForm echoes submitted values back when validation fails.
type GoalForm struct {
	Name  string
	Hours string
	Error string
}

type GoalsPage struct {
	Goals  []*model.GoalProgress
	Form   GoalForm
	Notice string
	Error  string
}

func Goals(page GoalsPage) templ.Component {
	return components.Layout("Goals", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := ui.NewWriter(w)
		out.Raw(`<h1>Goals</h1>`)
		out.Component(ctx, components.Alert(page.Notice, true))
		out.Component(ctx, components.Alert(page.Error, false))

		out.Raw(`<section class="card"><h2>New goal</h2>`)
		out.Component(ctx, components.Alert(page.Form.Error, false))
		out.Raw(`<form method="post" action="/goals" class="row">`)
		out.Component(ctx, components.CSRFField())
		out.Raw(`<input class="input grow" name="name" placeholder="Name" required value="`)
		out.Text(page.Form.Name)
		out.Raw(`"><input class="input" name="hours" placeholder="Hours" inputmode="numeric" required value="`)
		out.Text(page.Form.Hours)
		out.Raw(`">`)
		out.Component(ctx, components.Button(components.ButtonProps{Label: "Add goal"}))
		out.Raw(`</form></section>`)

		out.Raw(`<section class="card">`)
		if len(page.Goals) == 0 {
			out.Raw(`<p class="muted">No goals yet.</p>`)
		} else {
			out.Raw(`<table class="table"><thead><tr><th>Goal</th><th>Target</th><th>Progress</th><th></th></tr></thead><tbody>`)
			for _, goal := range page.Goals {
				out.Raw(fmt.Sprintf(`<tr><td><a href="/goals/%d">`, goal.Goal.ID))
				out.Text(goal.Goal.Name)
				out.Raw(fmt.Sprintf(`</a></td><td>%d h</td><td>`, goal.Goal.Hours))
				out.Component(ctx, components.ProgressBar(goal.Progress))
				out.Raw(`</td><td>`)
				out.Component(ctx, components.PostButton(
					fmt.Sprintf("/goals/%d/delete", goal.Goal.ID),
					"Delete",
					components.ButtonDanger,
					fmt.Sprintf("Delete %q?", goal.Goal.Name),
				))
				out.Raw(`</td></tr>`)
			}
			out.Raw(`</tbody></table>`)
		}
		out.Raw(`</section>`)

		out.Raw(`<section class="card"><h2>Import a plan</h2>`)
		out.Raw(`<p class="muted">Markdown with a <code>name</code> in the frontmatter and one task per line: <code>- [ ] read the book (4h) due 01/01/2030</code></p>`)
		out.Raw(`<form method="post" action="/goals/import" enctype="multipart/form-data" class="row">`)
		out.Component(ctx, components.CSRFField())
		out.Raw(`<input class="input grow" type="file" name="plan" accept=".md,text/markdown" required>`)
		out.Component(ctx, components.Button(components.ButtonProps{Label: "Import", Variant: components.ButtonOutline}))
		out.Raw(`</form></section>`)

		out.Raw(`<section class="row">`)
		out.Component(ctx, components.LinkButton("/goals/export", components.ButtonProps{Label: "Download JSON", Variant: components.ButtonOutline}))
		out.Component(ctx, components.PostButton("/goals/snapshot", "Save snapshot", components.ButtonOutline, ""))
		out.Raw(`</section>`)

		return out.Err()
	}))
}
