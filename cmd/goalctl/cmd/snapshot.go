package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/goaltracker/internal/app"
	"github.com/templui/goaltracker/internal/config"
)

func snapshotCmd(cfg *config.Config) *cobra.Command {
	var stdout bool

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export all goals and tasks as JSON",
		Long:  "Writes a JSON snapshot to the configured snapshot storage, or to stdout with --stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cfg, func(a *app.App) error {
				if stdout {
					snapshot, err := a.SnapshotService.Export()
					if err != nil {
						return err
					}

					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(snapshot)
				}

				url, err := a.SnapshotService.Save()
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), url)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&stdout, "stdout", false, "print the snapshot instead of storing it")
	return cmd
}
