package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tandemlab/tandem/internal/app"
	"github.com/tandemlab/tandem/internal/cli/formatter"
	"github.com/tandemlab/tandem/internal/domain"
)

func newGenerateCmd(a *App) *cobra.Command {
	var (
		minutes    int
		mood       string
		timeOfDay  string
		surprise   int
		weights    []string
		locations  []string
		intensity  []string
		costs      []string
		seed       int64
		explain    bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a timed plan of shared activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no parameters on a terminal, collect them interactively.
			var wizardWeights map[string]int
			if !cmd.Flags().Changed("minutes") && !cmd.Flags().Changed("mood") &&
				a.IsInteractive != nil && a.IsInteractive() {
				answers, err := runGenerateWizard(minutes, surprise, a.ProfileNames)
				if err != nil {
					return err
				}
				minutes = answers.Minutes
				mood = answers.Mood
				timeOfDay = answers.TimeOfDay
				surprise = answers.Surprise
				wizardWeights = answers.Weights
			}

			req := app.NewGenerateRequest(minutes)
			if cmd.Flags().Changed("minutes") {
				// An explicit --minutes 0 must reach validation instead of
				// being rewritten to the default.
				req.TargetMin = minutes
			}
			req.Surprise = surprise
			req.Explain = explain

			if mood != "" {
				if !domain.ValidMoods[mood] {
					return fmt.Errorf("invalid mood %q (tired|energetic|calm|fun)", mood)
				}
				req.Mood = domain.Mood(mood)
			}
			if timeOfDay != "" {
				if !domain.ValidTimesOfDay[timeOfDay] {
					return fmt.Errorf("invalid time of day %q (morning|afternoon|evening|night)", timeOfDay)
				}
				req.TimeOfDay = domain.TimeOfDay(timeOfDay)
			}

			parsedWeights, err := parseWeights(weights)
			if err != nil {
				return err
			}
			if len(parsedWeights) == 0 {
				parsedWeights = wizardWeights
			}
			req.Weights = parsedWeights

			req.Constraints, err = parseConstraints(locations, intensity, costs)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}

			resp, err := a.Plans.Generate(context.Background(), req)
			if err != nil {
				return err
			}

			if asJSON {
				out, err := json.MarshalIndent(resp.Plan, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding plan: %w", err)
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Println(formatter.FormatPlan(resp.Plan))
			if resp.Degraded {
				fmt.Fprintln(cmd.ErrOrStderr(),
					formatter.Dim("Ninguna actividad pasó los filtros; aflojen alguna restricción."))
			}
			if explain {
				fmt.Println(formatter.FormatScores(resp.Scores))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 60, "Target plan duration in minutes")
	cmd.Flags().StringVar(&mood, "mood", "", "Mood (tired|energetic|calm|fun)")
	cmd.Flags().StringVar(&timeOfDay, "time-of-day", "", "Time of day (morning|afternoon|evening|night)")
	cmd.Flags().IntVarP(&surprise, "surprise", "s", 30, "Surprise dial 0-100")
	cmd.Flags().StringArrayVarP(&weights, "weight", "w", nil, "Profile weight, e.g. --weight lilith=70 (repeatable)")
	cmd.Flags().StringSliceVar(&locations, "location", nil, "Location constraint (indoor,outdoor)")
	cmd.Flags().StringSliceVar(&intensity, "intensity", nil, "Allowed intensities (0,1,2)")
	cmd.Flags().StringSliceVar(&costs, "cost", nil, "Cost constraint (free,paid)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Fixed random seed for reproducible plans")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show the scoring breakdown")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")

	return cmd
}

func parseWeights(entries []string) (map[string]int, error) {
	weights := make(map[string]int, len(entries))
	for _, entry := range entries {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid weight %q (expected name=0-100)", entry)
		}
		w, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", entry, err)
		}
		weights[name] = w
	}
	return weights, nil
}

func parseConstraints(locations, intensity, costs []string) (app.Constraints, error) {
	var c app.Constraints
	for _, l := range locations {
		switch l {
		case "indoor":
			c.Location = append(c.Location, domain.LocationIndoor)
		case "outdoor":
			c.Location = append(c.Location, domain.LocationOutdoor)
		default:
			return c, fmt.Errorf("invalid location %q (indoor|outdoor)", l)
		}
	}
	for _, i := range intensity {
		level, err := strconv.Atoi(i)
		if err != nil || level < 0 || level > 2 {
			return c, fmt.Errorf("invalid intensity %q (0|1|2)", i)
		}
		c.Intensity = append(c.Intensity, domain.Intensity(level))
	}
	for _, cost := range costs {
		switch cost {
		case "free":
			c.Cost = append(c.Cost, domain.CostFree)
		case "paid":
			c.Cost = append(c.Cost, domain.CostPaid)
		default:
			return c, fmt.Errorf("invalid cost %q (free|paid)", cost)
		}
	}
	return c, nil
}
