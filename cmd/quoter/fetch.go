package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/quoter-cli/quoter/internal/fetch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fetchCount int

func init() {
	fetchCmd.Flags().IntVar(&fetchCount, "count", 1, "Number of quotes to fetch")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch quotes from a remote quote API",
	Long: `Fetch random quotes from the configured quote API and add them to
the store. Quotes whose content is already present are skipped.

The endpoint can be overridden with fetch_url in the config file or the
QUOTER_FETCH_URL environment variable.`,
	RunE: runFetch,
}

// FetchResponse is the JSON response for the fetch command.
type FetchResponse struct {
	Status  string `json:"status"`
	Added   int    `json:"added"`
	Skipped int    `json:"skipped"`
}

func runFetch(cmd *cobra.Command, args []string) error {
	// Load .env if present so QUOTER_FETCH_URL can live next to the project
	_ = godotenv.Load()

	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)

	if fetchCount < 1 {
		exitWithError(ExitError, "--count must be at least 1")
	}

	var opts []fetch.ClientOption
	if cfg.FetchURL != "" {
		opts = append(opts, fetch.WithBaseURL(cfg.FetchURL))
	}
	client := fetch.NewClient(opts...)

	quotes, err := client.Fetch(cmd.Context(), fetchCount)
	if err != nil {
		exitWithError(ExitError, "fetching quotes: %v", err)
	}
	logger.Debug("fetched quotes", zap.Int("count", len(quotes)))

	added, skipped, err := store.Ingest(quotes)
	if err != nil {
		exitWithError(exitCodeFor(err), "saving fetched quotes: %v", err)
	}

	if jsonOutput {
		return outputJSON(FetchResponse{Status: "fetched", Added: added, Skipped: skipped})
	}
	fmt.Printf("Fetched %d quotes (%d added, %d skipped).\n", len(quotes), added, skipped)
	return nil
}
