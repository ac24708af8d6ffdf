package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/tandemlab/tandem/internal/catalog"
	"github.com/tandemlab/tandem/internal/cli"
	"github.com/tandemlab/tandem/internal/db"
	"github.com/tandemlab/tandem/internal/repository"
	"github.com/tandemlab/tandem/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tandem/tandem.db
	dbPath := os.Getenv("TANDEM_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tandem", "tandem.db")
	}

	// Determine catalog directory
	dataDir := os.Getenv("TANDEM_DATA")
	if dataDir == "" {
		// Check for ./data in current directory first (development)
		if stat, err := os.Stat("./data"); err == nil && stat.IsDir() {
			dataDir = "./data"
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}
			dataDir = filepath.Join(home, ".tandem", "data")
		}
	}

	activities, err := catalog.LoadActivities(filepath.Join(dataDir, "activities.json"))
	if err != nil {
		return err
	}
	pair, err := catalog.LoadPair(filepath.Join(dataDir, "profiles.json"))
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	heuristicsRepo := repository.NewSQLiteHeuristicsRepo(database)
	historyRepo := repository.NewSQLitePlanHistoryRepo(database)
	feedbackRepo := repository.NewSQLiteFeedbackRepo(database)

	// Observer logs to stderr only when asked
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("TANDEM_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Plans:        service.NewPlanService(activities, pair, heuristicsRepo, historyRepo, feedbackRepo, observer),
		Feedback:     service.NewFeedbackService(feedbackRepo, heuristicsRepo, observer),
		History:      service.NewHistoryService(historyRepo),
		Heuristics:   service.NewHeuristicsService(heuristicsRepo),
		ProfileNames: pair.Names(),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
