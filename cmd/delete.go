package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/critapp/crit/internal/output"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a review",
	Long: `Delete one review by id. Deleting an id that is already gone
is treated as success.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteRun(args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func deleteRun(id string) error {
	if err := getService().Delete(context.Background(), id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	ui.Success("Deleted review: %s", output.Cyan(id))
	return nil
}
