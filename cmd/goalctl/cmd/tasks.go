package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/templui/goaltracker/internal/app"
	"github.com/templui/goaltracker/internal/config"
)

func tasksCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage the tasks of a goal",
	}

	cmd.AddCommand(tasksListCmd(cfg))
	cmd.AddCommand(tasksAddCmd(cfg))
	cmd.AddCommand(tasksSetCompletedCmd(cfg, "done", true))
	cmd.AddCommand(tasksSetCompletedCmd(cfg, "undo", false))
	cmd.AddCommand(tasksDeleteCmd(cfg))
	return cmd
}

func tasksListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list <goal-id>",
		Short: "List the tasks of a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalID, err := parseID(args[0], "goal")
			if err != nil {
				return err
			}

			return withApp(cfg, func(a *app.App) error {
				tasks, err := a.TaskService.Tasks(goalID)
				if err != nil {
					return err
				}

				if len(tasks) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No tasks yet.")
					return nil
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tDONE\tHOURS\tDEADLINE\tDESCRIPTION")
				for _, task := range tasks {
					done := " "
					if task.Completed {
						done = "x"
					}
					deadline := "-"
					if task.Deadline != nil {
						deadline = task.Deadline.Time().Format("02/01/2006")
					}
					fmt.Fprintf(tw, "%d\t[%s]\t%d\t%s\t%s\n", task.ID, done, task.Hours, deadline, task.Description)
				}
				return tw.Flush()
			})
		},
	}
}

func tasksAddCmd(cfg *config.Config) *cobra.Command {
	var deadline string

	cmd := &cobra.Command{
		Use:   "add <goal-id> <description> <hours>",
		Short: "Add a task to a goal",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalID, err := parseID(args[0], "goal")
			if err != nil {
				return err
			}

			return withApp(cfg, func(a *app.App) error {
				task, err := a.TaskService.Create(goalID, args[1], args[2], deadline)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Created task %d for goal %d\n", task.ID, goalID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&deadline, "deadline", "d", "", "deadline as DD/MM/YYYY or DDMMYYYY")
	return cmd
}

func tasksSetCompletedCmd(cfg *config.Config, use string, completed bool) *cobra.Command {
	short := "Mark a task as completed"
	if !completed {
		short = "Mark a task as pending again"
	}

	return &cobra.Command{
		Use:   use + " <task-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0], "task")
			if err != nil {
				return err
			}

			return withApp(cfg, func(a *app.App) error {
				task, err := a.TaskService.ByID(taskID)
				if err != nil {
					return err
				}

				percent, err := a.TaskService.SetCompleted(taskID, completed)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Goal %d is %d%% complete\n", task.GoalID, percent)
				return nil
			})
		},
	}
}

func tasksDeleteCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0], "task")
			if err != nil {
				return err
			}

			return withApp(cfg, func(a *app.App) error {
				task, err := a.TaskService.ByID(taskID)
				if err != nil {
					return err
				}

				percent, err := a.TaskService.Delete(taskID)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d, goal %d is %d%% complete\n", taskID, task.GoalID, percent)
				return nil
			})
		},
	}
}
