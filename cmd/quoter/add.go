package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var addAuthor string

func init() {
	addCmd.Flags().StringVar(&addAuthor, "author", "", "Quote author (defaults to Anonymous)")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add [--author NAME] <text>",
	Short: "Add a new quote",
	Long: `Add a quote to the store. The new quote gets the next free ID.

Examples:
  quoter add "Simplicity is the ultimate sophistication."
  quoter add --author "Rob Pike" "Clear is better than clever."`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)

	content := strings.Join(args, " ")
	q, err := store.Add(addAuthor, content)
	if err != nil {
		exitWithError(exitCodeFor(err), "adding quote: %v", err)
	}
	logger.Debug("added quote", zap.Int("id", q.ID), zap.String("author", q.Author))

	if jsonOutput {
		return outputJSON(q)
	}
	fmt.Printf("Added quote #%d.\n", q.ID)
	return nil
}
