package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/templui/goaltracker/internal/ui"
	"github.com/templui/goaltracker/internal/ui/components"
)

func NotFound(message string) templ.Component {
	return components.Layout("Not found", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := ui.NewWriter(w)
		out.Raw(`<h1>Not found</h1><p>`)
		out.Text(message)
		out.Raw(`</p><p><a href="/goals">Back to goals</a></p>`)
		return out.Err()
	}))
}
