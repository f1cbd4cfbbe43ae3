package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/templui/goaltracker/internal/app"
	"github.com/templui/goaltracker/internal/config"
)

func importCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Create a goal and its tasks from a markdown plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read plan: %w", err)
			}

			return withApp(cfg, func(a *app.App) error {
				goal, err := a.PlanService.Import(source)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Imported goal %d: %s (%dh, %d%% complete)\n",
					goal.Goal.ID, goal.Goal.Name, goal.Goal.Hours, goal.Percent())
				return nil
			})
		},
	}
}
