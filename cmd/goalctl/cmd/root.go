package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/templui/goaltracker/internal/app"
	"github.com/templui/goaltracker/internal/config"
)

// RootCmd builds the goalctl command tree. Every command opens the store on
// demand and closes it before returning.
func RootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "goalctl",
		Short:        "Track goals, tasks and deadlines from the terminal",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(goalsCmd(cfg))
	rootCmd.AddCommand(tasksCmd(cfg))
	rootCmd.AddCommand(dueCmd(cfg))
	rootCmd.AddCommand(importCmd(cfg))
	rootCmd.AddCommand(snapshotCmd(cfg))
	rootCmd.AddCommand(digestCmd(cfg))
	rootCmd.AddCommand(migrateCmd(cfg))
	return rootCmd
}

func withApp(cfg *config.Config, fn func(a *app.App) error) error {
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a)
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, raw)
	}
	return id, nil
}
