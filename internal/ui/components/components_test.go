package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/goaltracker/internal/ctxkeys"
	"github.com/templui/goaltracker/internal/model"
)

func TestButtonClass(t *testing.T) {
	classes := strings.Fields(ButtonClass(ButtonDefault, false))
	assert.ElementsMatch(t, []string{"btn", "px-4", "py-2", "text-sm", "bg-zinc-900", "text-white", "border-transparent"}, classes)

	// variant and size replace the conflicting base utilities
	classes = strings.Fields(ButtonClass(ButtonOutline, true))
	assert.ElementsMatch(t, []string{"btn", "px-2", "py-1", "text-xs", "bg-white", "text-zinc-900", "border-zinc-300"}, classes)

	classes = strings.Fields(ButtonClass(ButtonDanger, false))
	assert.Contains(t, classes, "bg-red-600")
	assert.NotContains(t, classes, "bg-zinc-900")
	assert.Contains(t, classes, "text-white")
}

func TestButtonClassExtraOverridesBase(t *testing.T) {
	classes := strings.Fields(ButtonClass(ButtonDefault, false, "px-2", "w-full"))

	assert.Contains(t, classes, "px-2")
	assert.NotContains(t, classes, "px-4")
	assert.Contains(t, classes, "py-2")
	assert.Contains(t, classes, "w-full")
}

func TestAlertNoticeReplacesColors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Alert("Saved", true).Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, "bg-green-50")
	assert.NotContains(t, html, "bg-red-50")
	assert.NotContains(t, html, "border-red-200")
}

func TestPostButtonEscapesAndCarriesToken(t *testing.T) {
	ctx := ctxkeys.WithCSRFToken(context.Background(), "tok")

	var buf bytes.Buffer
	err := PostButton("/goals/1/delete", "Delete", ButtonDanger, `Delete "Learn X"?`).Render(ctx, &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `action="/goals/1/delete"`)
	assert.Contains(t, html, `value="tok"`)
	assert.Contains(t, html, `data-confirm="Delete &#34;Learn X&#34;?"`)
}

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	err := ProgressBar(model.Progress{TotalHours: 10, DoneHours: 6}).Render(context.Background(), &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `aria-valuenow="60"`)
	assert.Contains(t, buf.String(), "6 of 10 h")
}

func TestButtonComponents(t *testing.T) {
	var buf bytes.Buffer
	err := Button(ButtonProps{Label: `Add <goal>`, Variant: ButtonOutline, Class: "px-2"}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `type="submit"`)
	assert.Contains(t, html, "Add &lt;goal&gt;")
	assert.Contains(t, html, "px-2")
	assert.NotContains(t, html, "px-4")

	buf.Reset()
	err = LinkButton("/goals/export?x=1&y=2", ButtonProps{Label: "Download JSON"}).Render(context.Background(), &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `href="/goals/export?x=1&amp;y=2"`)
	assert.Contains(t, buf.String(), ">Download JSON</a>")
}
