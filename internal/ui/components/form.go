package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/templui/goaltracker/internal/ctxkeys"
	"github.com/templui/goaltracker/internal/ui"
)

// CSRFField renders the hidden token input every POST form needs.
func CSRFField() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := ui.NewWriter(w)
		out.Raw(`<input type="hidden" name="csrf_token" value="`)
		out.Text(ctxkeys.CSRFToken(ctx))
		out.Raw(`">`)
		return out.Err()
	})
}

// PostButton is a one-button form, used for actions like delete and toggle.
// A non-empty confirm message asks the user before submitting.
func PostButton(action, label string, variant ButtonVariant, confirm string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := ui.NewWriter(w)
		out.Raw(`<form method="post" action="`)
		out.Text(action)
		out.Raw(`"`)
		if confirm != "" {
			out.Raw(` data-confirm="`)
			out.Text(confirm)
			out.Raw(`"`)
		}
		out.Raw(`>`)
		out.Component(ctx, CSRFField())
		out.Component(ctx, Button(ButtonProps{Label: label, Variant: variant, Small: true}))
		out.Raw(`</form>`)
		return out.Err()
	})
}

// Alert shows an error message, or a notice when notice is true.
func Alert(message string, notice bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if message == "" {
			return nil
		}
		out := ui.NewWriter(w)
		class := "alert border-red-200 bg-red-50 text-red-800"
		if notice {
			class = Class(class, "border-green-200 bg-green-50 text-green-800")
		}
		out.Raw(`<div class="` + class + `" role="alert">`)
		out.Text(message)
		out.Raw(`</div>`)
		return out.Err()
	})
}
