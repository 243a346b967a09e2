package main

import (
	"errors"

	"github.com/quoter-cli/quoter/internal/quote"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(qotdCmd)
}

var qotdCmd = &cobra.Command{
	Use:   "qotd",
	Short: "Show a random quote of the day",
	RunE:  runQotd,
}

func runQotd(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)

	q, err := store.Random()
	if err != nil {
		if errors.Is(err, quote.ErrEmptyStore) {
			// Never fatal: an empty store just has nothing to say today
			if jsonOutput {
				return outputJSON(StatusResponse{Status: "empty"})
			}
			diagnostic("Quote store is empty.")
			return nil
		}
		exitWithError(exitCodeFor(err), "picking quote: %v", err)
	}

	if jsonOutput {
		return outputJSON(q)
	}
	printQuote(q)
	return nil
}
