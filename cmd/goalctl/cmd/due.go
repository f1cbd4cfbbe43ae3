package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/templui/goaltracker/internal/app"
	"github.com/templui/goaltracker/internal/config"
	"github.com/templui/goaltracker/internal/validation"
)

func dueCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "due <date>",
		Short: "List tasks due on a date (YYYY-MM-DD, DD/MM/YYYY or DDMMYYYY)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := validation.ParseDay(args[0])
			if err != nil {
				return err
			}

			return withApp(cfg, func(a *app.App) error {
				due, err := a.CalendarService.TasksOnDate(date)
				if err != nil {
					return err
				}

				if len(due) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Nothing due on %s.\n", date)
					return nil
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "TASK\tDONE\tGOAL\tDESCRIPTION")
				for _, task := range due {
					done := " "
					if task.Completed {
						done = "x"
					}
					fmt.Fprintf(tw, "%d\t[%s]\t%s\t%s\n", task.TaskID, done, task.GoalName, task.Description)
				}
				return tw.Flush()
			})
		},
	}
}
