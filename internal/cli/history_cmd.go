package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tandemlab/tandem/internal/cli/formatter"
)

func newHistoryCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently generated plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := a.History.Recent(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatHistory(summaries, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "How many plans to show")
	return cmd
}
