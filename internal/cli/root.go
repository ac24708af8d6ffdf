package cli

import (
	"github.com/spf13/cobra"
	"github.com/tandemlab/tandem/internal/app"
)

// App holds references to all use case interfaces consumed by CLI commands.
type App struct {
	Plans      app.GeneratePlanUseCase
	Feedback   app.FeedbackUseCase
	History    app.HistoryUseCase
	Heuristics app.HeuristicsUseCase

	// ProfileNames lists the two partner names from the loaded catalog.
	ProfileNames []string

	// IsInteractive reports whether stdin is a terminal; the generate
	// command only opens its wizard when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tandem" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tandem",
		Short: "Shared-activity planner for two",
	}

	root.AddCommand(
		newGenerateCmd(a),
		newFeedbackCmd(a),
		newHistoryCmd(a),
		newHeuristicsCmd(a),
	)

	return root
}
