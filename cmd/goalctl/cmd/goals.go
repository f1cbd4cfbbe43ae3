package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/templui/goaltracker/internal/app"
	"github.com/templui/goaltracker/internal/config"
)

func goalsCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "List, add and delete goals",
	}

	cmd.AddCommand(goalsListCmd(cfg))
	cmd.AddCommand(goalsAddCmd(cfg))
	cmd.AddCommand(goalsDeleteCmd(cfg))
	return cmd
}

func goalsListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with their progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cfg, func(a *app.App) error {
				goals, err := a.GoalService.GoalsWithProgress()
				if err != nil {
					return err
				}

				if len(goals) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No goals yet.")
					return nil
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tTARGET\tDONE\tPROGRESS")
				for _, goal := range goals {
					fmt.Fprintf(tw, "%d\t%s\t%dh\t%d/%dh\t%d%%\n",
						goal.Goal.ID,
						goal.Goal.Name,
						goal.Goal.Hours,
						goal.Progress.DoneHours,
						goal.Progress.TotalHours,
						goal.Percent(),
					)
				}
				return tw.Flush()
			})
		},
	}
}

func goalsAddCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <hours>",
		Short: "Create a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cfg, func(a *app.App) error {
				goal, err := a.GoalService.Create(args[0], args[1])
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Created goal %d: %s (%dh)\n", goal.ID, goal.Name, goal.Hours)
				return nil
			})
		},
	}
}

func goalsDeleteCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <goal-id>",
		Short: "Delete a goal (tasks follow GOAL_DELETE_POLICY)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalID, err := parseID(args[0], "goal")
			if err != nil {
				return err
			}

			return withApp(cfg, func(a *app.App) error {
				if err := a.GoalService.Delete(goalID); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %d\n", goalID)
				return nil
			})
		},
	}
}
