package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tandemlab/tandem/internal/cli/formatter"
)

func newHeuristicsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heuristics",
		Short: "Inspect or reset the adaptive weights",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the current heuristics",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.Heuristics.Current(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.Header("Heuristics"))
			fmt.Print(formatter.FormatHeuristics(h))
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.Heuristics.Reset(context.Background())
			if err != nil {
				return err
			}
			fmt.Println("Heuristics reset to defaults.")
			fmt.Print(formatter.FormatHeuristics(h))
			return nil
		},
	}

	cmd.AddCommand(show, reset)
	return cmd
}
