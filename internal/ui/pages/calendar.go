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

type CalendarPage struct {
	Selected model.Date
	Today    model.Date
	Due      []*model.DueTask
	Error    string
}

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func Calendar(page CalendarPage) templ.Component {
	return components.Layout("Calendar", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := ui.NewWriter(w)
		first := model.NewDate(page.Selected.Year, page.Selected.Month, 1)
		prev := model.NewDate(first.Year, first.Month-1, 1)
		next := model.NewDate(first.Year, first.Month+1, 1)

		out.Raw(`<h1>Calendar</h1>`)
		out.Component(ctx, components.Alert(page.Error, false))
		out.Raw(`<section class="card"><div class="row">`)
		out.Component(ctx, components.LinkButton("/calendar?date="+prev.String(), components.ButtonProps{Label: "←", Variant: components.ButtonOutline, Small: true}))
		out.Raw(`<strong class="grow" style="text-align:center">`)
		out.Text(first.Time().Format("January 2006"))
		out.Raw(`</strong>`)
		out.Component(ctx, components.LinkButton("/calendar?date="+next.String(), components.ButtonProps{Label: "→", Variant: components.ButtonOutline, Small: true}))
		out.Raw(`</div>`)

		out.Raw(`<table class="calendar"><thead><tr>`)
		for _, day := range weekdays {
			out.Raw(`<th>` + day + `</th>`)
		}
		out.Raw(`</tr></thead><tbody>`)
		for _, week := range monthGrid(first) {
			out.Raw(`<tr>`)
			for _, day := range week {
				class := ""
				if day.Month != first.Month {
					class = components.Class(class, "other")
				}
				if day == page.Today {
					class = components.Class(class, "today")
				}
				if day == page.Selected {
					class = components.Class(class, "selected")
				}
				out.Raw(`<td><a class="` + class + `" href="/calendar?date=` + day.String() + `">`)
				out.Raw(fmt.Sprint(day.Day))
				out.Raw(`</a></td>`)
			}
			out.Raw(`</tr>`)
		}
		out.Raw(`</tbody></table></section>`)

		out.Raw(`<section class="card"><h2>Due `)
		out.Text(page.Selected.Time().Format("Monday, 2 January 2006"))
		out.Raw(`</h2>`)
		if len(page.Due) == 0 {
			out.Raw(`<p class="muted">Nothing due on this day.</p>`)
		} else {
			out.Raw(`<ul>`)
			for _, task := range page.Due {
				if task.Completed {
					out.Raw(`<li class="done">`)
				} else {
					out.Raw(`<li>`)
				}
				out.Text(task.Description)
				out.Raw(fmt.Sprintf(` <a class="muted" href="/goals/%d">`, task.GoalID))
				out.Text(task.GoalName)
				out.Raw(`</a></li>`)
			}
			out.Raw(`</ul>`)
		}
		out.Raw(`</section>`)

		return out.Err()
	}))
}

// monthGrid returns the Monday-first weeks covering the month of first.
func monthGrid(first model.Date) [][]model.Date {
	offset := (int(first.Time().Weekday()) + 6) % 7
	day := first.AddDays(-offset)

	var weeks [][]model.Date
	for len(weeks) == 0 || day.Month == first.Month {
		week := make([]model.Date, 7)
		for i := range week {
			week[i] = day
			day = day.AddDays(1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}
