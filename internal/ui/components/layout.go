package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/templui/goaltracker/internal/ctxkeys"
	"github.com/templui/goaltracker/internal/ui"
)

const confirmScript = `document.addEventListener("submit",function(e){var m=e.target.getAttribute("data-confirm");if(m&&!window.confirm(m)){e.preventDefault()}});`

var navLinks = []struct {
	Href  string
	Label string
}{
	{"/goals", "Goals"},
	{"/calendar", "Calendar"},
}

// Layout wraps a page body with the document shell and navigation.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		appName := "Goal Tracker"
		if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.AppName != "" {
			appName = cfg.AppName
		}
		path := ctxkeys.URLPath(ctx)

		out := ui.NewWriter(w)
		out.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		out.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		out.Raw(`<title>`)
		if title != "" {
			out.Text(title + " · ")
		}
		out.Text(appName)
		out.Raw(`</title><link rel="stylesheet" href="/assets/app.css"></head><body>`)

		out.Raw(`<nav class="nav"><a class="brand" href="/goals">`)
		out.Text(appName)
		out.Raw(`</a>`)
		for _, link := range navLinks {
			out.Raw(`<a href="` + link.Href + `"`)
			if path == link.Href {
				out.Raw(` aria-current="page"`)
			}
			out.Raw(`>`)
			out.Text(link.Label)
			out.Raw(`</a>`)
		}
		out.Raw(`</nav><main class="container">`)

		out.Component(ctx, body)

		out.Raw(`</main><script nonce="`)
		out.Text(templ.GetNonce(ctx))
		out.Raw(`">` + confirmScript + `</script></body></html>`)
		return out.Err()
	})
}
