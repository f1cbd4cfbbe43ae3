package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/templui/goaltracker/internal/app"
	"github.com/templui/goaltracker/internal/config"
	"github.com/templui/goaltracker/internal/model"
	"github.com/templui/goaltracker/internal/validation"
)

func digestCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "digest [date]",
		Short: "Email the open tasks due on a date (default today) to DIGEST_TO",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := model.DateOf(time.Now())
			if len(args) == 1 {
				parsed, err := validation.ParseDay(args[0])
				if err != nil {
					return err
				}
				date = parsed
			}

			return withApp(cfg, func(a *app.App) error {
				n, err := a.DigestService.Send(cmd.Context(), date)
				if err != nil {
					return err
				}

				if n == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Nothing open is due on %s, no digest sent.\n", date)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Sent digest with %d task(s) due on %s\n", n, date)
				return nil
			})
		},
	}
}
