package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/templui/goaltracker/internal/model"
	"github.com/templui/goaltracker/internal/ui"
)

func ProgressBar(progress model.Progress) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		percent := progress.Percent()
		out := ui.NewWriter(w)
		out.Raw(fmt.Sprintf(`<div class="row"><div class="progress" role="progressbar" aria-valuemin="0" aria-valuemax="100" aria-valuenow="%d"><span style="width:%d%%"></span></div>`, percent, percent))
		out.Raw(fmt.Sprintf(`<span>%d%%</span><span class="muted">%d of %d h</span></div>`, percent, progress.DoneHours, progress.TotalHours))
		return out.Err()
	})
}
