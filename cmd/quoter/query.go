package main

import (
	"errors"
	"fmt"

	"github.com/quoter-cli/quoter/internal/quote"
	"github.com/spf13/cobra"
)

var (
	queryID             int
	queryAuthor         string
	queryShowDuplicates bool
)

func init() {
	queryCmd.Flags().IntVar(&queryID, "id", 0, "Quote ID number")
	queryCmd.Flags().StringVar(&queryAuthor, "author", "", "Quote author (exact match)")
	queryCmd.Flags().BoolVar(&queryShowDuplicates, "show-duplicates", false, "Include quotes with duplicated content")
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query [--id N] [--author NAME]",
	Short: "Query existing quotes",
	Long: `Query quotes by ID or author. An ID that resolves wins over the
author selector; otherwise all quotes by the author are returned, with
duplicated contents suppressed unless --show-duplicates is given.

Examples:
  quoter query --id 12
  quoter query --author "Rob Pike"
  quoter query --author "Rob Pike" --show-duplicates`,
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)

	quotes, err := store.Query(queryID, queryAuthor, queryShowDuplicates)
	if err != nil {
		if errors.Is(err, quote.ErrNotFound) {
			// A lookup miss is a diagnostic, not a failure
			diagnostic("Couldn't find quote.")
			if jsonOutput {
				return outputQuotes(nil)
			}
			return nil
		}
		if errors.Is(err, quote.ErrUsage) {
			exitWithError(ExitError, "%v\n\n%s", err, cmd.UsageString())
		}
		exitWithError(exitCodeFor(err), "querying quotes: %v", err)
	}

	if !jsonOutput && len(quotes) == 0 {
		fmt.Println("No quotes found.")
		return nil
	}
	return outputQuotes(quotes)
}
