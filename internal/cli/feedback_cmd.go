package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tandemlab/tandem/internal/cli/formatter"
	"github.com/tandemlab/tandem/internal/domain"
)

func newFeedbackCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record feedback on activities and plans",
	}

	cmd.AddCommand(newFeedbackActivityCmd(a), newFeedbackPlanCmd(a))
	return cmd
}

func newFeedbackActivityCmd(a *App) *cobra.Command {
	var planID, feedbackType string

	cmd := &cobra.Command{
		Use:   "activity <activity-id>",
		Short: "Record feedback on one activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ft := domain.FeedbackType(feedbackType)
			if err := a.Feedback.RecordActivity(context.Background(), args[0], planID, ft); err != nil {
				return err
			}
			fmt.Printf("Recorded %s for %s\n", formatter.Bold(feedbackType), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan the feedback belongs to")
	cmd.Flags().StringVarP(&feedbackType, "type", "t", "", "Feedback type (thumbs-up|thumbs-down|completed|skipped)")
	cmd.MarkFlagRequired("type")

	return cmd
}

func newFeedbackPlanCmd(a *App) *cobra.Command {
	var rating string

	cmd := &cobra.Command{
		Use:   "plan <plan-id>",
		Short: "Rate a whole plan, adapting future generation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.Feedback.RatePlan(context.Background(), args[0], domain.PlanRating(rating))
			if err != nil {
				return err
			}
			fmt.Printf("Rated plan %s as %s\n", formatter.TruncID(args[0]), formatter.Bold(rating))
			fmt.Printf("Feedback weight is now %s\n", formatter.Bold(fmt.Sprintf("%.3f", h.FeedbackWeight)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&rating, "rating", "r", "", "Plan rating (love|okay|bad)")
	cmd.MarkFlagRequired("rating")

	return cmd
}
