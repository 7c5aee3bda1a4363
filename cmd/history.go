package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/critapp/crit/internal/filter"
	"github.com/critapp/crit/internal/output"
	"github.com/critapp/crit/internal/session"
)

var (
	historySearch string
	historyDelete string
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"ls", "list"},
	Short:   "List past reviews",
	Long: `List the reviews held by the service, newest first.
Use --search to narrow the list by language or filename, and
--delete to remove a review from within the list view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return historyRun()
	},
}

func init() {
	historyCmd.Flags().StringVarP(&historySearch, "search", "s", "", "Filter by language or filename (case-insensitive)")
	historyCmd.Flags().StringVar(&historyDelete, "delete", "", "Delete the review with this id, then list")
	rootCmd.AddCommand(historyCmd)
}

func historyRun() error {
	coll, err := session.NewCollection(getService())
	if err != nil {
		return err
	}

	reviews, err := coll.Load(context.Background())
	if err != nil {
		return fmt.Errorf("load reviews: %w", err)
	}

	if historyDelete != "" {
		if err := coll.Delete(context.Background(), historyDelete); err != nil {
			return fmt.Errorf("delete review: %w", err)
		}
		ui.Success("Deleted review: %s", output.Cyan(historyDelete))
		reviews = coll.Reviews()
	}

	shown := filter.SortNewestFirst(filter.Match(reviews, historySearch))

	if len(shown) == 0 {
		if historySearch != "" {
			ui.Info("No reviews match %q.", historySearch)
		} else {
			ui.Info("No reviews yet. Use 'crit analyze <file>' to submit code.")
		}
		return nil
	}

	table := ui.Table([]string{"ID", "Language", "Filename", "Score", "Submitted"})
	for _, r := range shown {
		s := r.Summary()
		table.Append([]string{
			output.Cyan(s.ID),
			string(s.Language),
			s.Filename,
			output.ScoreColor(s.OverallScore),
			s.Timestamp.Local().Format("2006-01-02 15:04"),
		})
	}
	table.Render()
	return nil
}
