package main

import (
	"fmt"
	"strings"

	"github.com/quoter-cli/quoter/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// DefaultSearchLimit is the default limit for search results.
const DefaultSearchLimit = 50

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultSearchLimit, "Maximum results to return")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <terms>",
	Short: "Full-text search over quotes",
	Long: `Search quote contents and authors with full-text matching. The
search index is rebuilt from the quotes file on every run, so results
always reflect the current collection.

Examples:
  quoter search simplicity
  quoter search "clear is better"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)

	index, err := storage.OpenIndex(cfg.IndexPath)
	if err != nil {
		exitWithError(ExitError, "opening search index: %v", err)
	}
	defer index.Close()

	indexed, err := index.Rebuild(store.Quotes())
	if err != nil {
		exitWithError(ExitError, "rebuilding search index: %v", err)
	}
	logger.Debug("rebuilt search index",
		zap.String("path", cfg.IndexPath),
		zap.Int("quotes", indexed))

	terms := strings.Join(args, " ")
	results, err := index.Search(terms, searchLimit)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	if !jsonOutput && len(results) == 0 {
		fmt.Printf("No quotes match %q.\n", terms)
		return nil
	}
	return outputQuotes(results)
}
