package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/templui/goaltracker/internal/ui"
)

type ButtonProps struct {
	Label   string
	Variant ButtonVariant
	Small   bool
	Class   string // merged over the variant classes
}

func (p ButtonProps) class() string {
	return ButtonClass(p.Variant, p.Small, p.Class)
}

// Button renders a submit button.
func Button(p ButtonProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := ui.NewWriter(w)
		out.Raw(`<button type="submit" class="`)
		out.Text(p.class())
		out.Raw(`">`)
		out.Text(p.Label)
		out.Raw(`</button>`)
		return out.Err()
	})
}

// LinkButton renders a link styled as a button.
func LinkButton(href string, p ButtonProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := ui.NewWriter(w)
		out.Raw(`<a class="`)
		out.Text(p.class())
		out.Raw(`" href="`)
		out.Text(href)
		out.Raw(`">`)
		out.Text(p.Label)
		out.Raw(`</a>`)
		return out.Err()
	})
}
