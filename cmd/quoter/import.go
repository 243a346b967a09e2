package main

import (
	"fmt"

	"github.com/quoter-cli/quoter/internal/ingest"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importAuthor string
	importFormat string
)

func init() {
	importCmd.Flags().StringVar(&importAuthor, "author", "", "Author for entries without one")
	importCmd.Flags().StringVar(&importFormat, "format", "", "Input format: text, json or pdf (default: by extension)")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import quotes from a file",
	Long: `Bulk-import quotes. Text files contribute one quote per non-empty
line, JSON files an array of {author, content} records, and PDF files
their extracted text line by line. Contents already in the store are
skipped.

Examples:
  quoter import fortunes.txt --author "Anonymous"
  quoter import backup.json
  quoter import talk-slides.pdf --author "Rob Pike"`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// ImportResponse is the JSON response for the import command.
type ImportResponse struct {
	Status  string `json:"status"`
	Added   int    `json:"added"`
	Skipped int    `json:"skipped"`
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)

	incoming, err := ingest.FromFile(args[0], importAuthor, importFormat)
	if err != nil {
		exitWithError(ExitDataError, "importing %s: %v", args[0], err)
	}

	added, skipped, err := store.Ingest(incoming)
	if err != nil {
		exitWithError(exitCodeFor(err), "saving imported quotes: %v", err)
	}
	logger.Debug("imported quotes",
		zap.String("file", args[0]),
		zap.Int("added", added),
		zap.Int("skipped", skipped))

	if jsonOutput {
		return outputJSON(ImportResponse{Status: "imported", Added: added, Skipped: skipped})
	}
	fmt.Printf("Imported %d quotes (%d skipped).\n", added, skipped)
	return nil
}
