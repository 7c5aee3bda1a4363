package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/critapp/crit/internal/models"
	"github.com/critapp/crit/internal/output"
	"github.com/critapp/crit/internal/session"
)

var (
	showDelete bool
	showCode   bool
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a review's full results",
	Long: `Show the category scores and issues of one review.
Use --code to include the submitted code, and --delete to remove
the review after showing it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showRun(args[0])
	},
}

func init() {
	showCmd.Flags().BoolVar(&showDelete, "delete", false, "Delete the review after showing it")
	showCmd.Flags().BoolVar(&showCode, "code", false, "Include the submitted code")
	rootCmd.AddCommand(showCmd)
}

func showRun(id string) error {
	detail, err := session.NewDetail(getService(), id)
	if err != nil {
		return err
	}

	review, err := detail.Load(context.Background())
	if err != nil {
		if detail.NotFound() {
			ui.Error("No review with id %s. It may have been deleted.", id)
			ui.Info("Run 'crit history' to see what's available.")
			return fmt.Errorf("review not found: %s", id)
		}
		return fmt.Errorf("load review: %w", err)
	}

	renderReview(review)

	if showDelete {
		if err := detail.Delete(context.Background()); err != nil {
			return fmt.Errorf("delete review: %w", err)
		}
		detail.Discard()
		ui.Success("Deleted review: %s", output.Cyan(review.ID))
	}
	return nil
}

func renderReview(r *models.Review) {
	fmt.Fprintf(ui.Out, "%s\n", output.Cyan(r.ID))
	fmt.Fprintf(ui.Out, "  Language:   %s\n", r.Language)
	if r.Filename != "" {
		fmt.Fprintf(ui.Out, "  Filename:   %s\n", r.Filename)
	}
	fmt.Fprintf(ui.Out, "  Submitted:  %s\n", r.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(ui.Out, "  Overall:    %s / 100\n", output.ScoreColor(r.OverallScore))
	fmt.Fprintln(ui.Out)

	for _, res := range r.Results {
		fmt.Fprintf(ui.Out, "  %s: %s\n", res.Category, output.ScoreColor(res.Score))
		for _, issue := range res.Issues {
			loc := ""
			if issue.Line != nil {
				loc = fmt.Sprintf(" (line %d)", *issue.Line)
			}
			fmt.Fprintf(ui.Out, "    [%s]%s %s\n", output.SeverityColor(issue.Severity), loc, issue.Message)
			if issue.Suggestion != "" {
				fmt.Fprintf(ui.Out, "      %s\n", issue.Suggestion)
			}
		}
	}

	if showCode && r.Code != "" {
		fmt.Fprintln(ui.Out)
		fmt.Fprintln(ui.Out, r.Code)
	}
}
