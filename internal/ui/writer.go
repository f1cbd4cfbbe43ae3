package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer collects markup for hand-written components and remembers the
// first write error so callers can check once at the end.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as is.
func (w *Writer) Raw(s string) {
	if w.err == nil {
		_, w.err = io.WriteString(w.w, s)
	}
}

// Text writes escaped text, safe for element content and quoted attributes.
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

func (w *Writer) Component(ctx context.Context, c templ.Component) {
	if w.err == nil && c != nil {
		w.err = c.Render(ctx, w.w)
	}
}

func (w *Writer) Err() error {
	return w.err
}
