package main

import (
	"fmt"

	"github.com/quoter-cli/quoter/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pruneDryRun bool

func init() {
	pruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "Report duplicates without removing them")
	rootCmd.AddCommand(pruneCmd)
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove duplicate quotes",
	Long: `Remove quotes whose content duplicates an earlier quote (the first
occurrence is kept, regardless of author) and reindex the survivors to
contiguous IDs starting at 1. Running prune twice in a row removes
nothing on the second run.`,
	RunE: runPrune,
}

// PruneResponse is the JSON response for the prune command.
type PruneResponse struct {
	Status  string                 `json:"status"`
	Removed []storage.RemovedQuote `json:"removed"`
	Kept    int                    `json:"kept"`
	DryRun  bool                   `json:"dry_run,omitempty"`
}

func runPrune(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)

	report, err := store.Prune(pruneDryRun)
	if err != nil {
		exitWithError(exitCodeFor(err), "pruning quotes: %v", err)
	}
	logger.Debug("pruned quotes",
		zap.Int("removed", len(report.Removed)),
		zap.Int("kept", report.Kept),
		zap.Bool("dry_run", pruneDryRun))

	if jsonOutput {
		status := "pruned"
		if len(report.Removed) == 0 {
			status = "clean"
		}
		removed := report.Removed
		if removed == nil {
			removed = []storage.RemovedQuote{}
		}
		return outputJSON(PruneResponse{
			Status:  status,
			Removed: removed,
			Kept:    report.Kept,
			DryRun:  pruneDryRun,
		})
	}

	if len(report.Removed) == 0 {
		fmt.Println("No duplicates found")
		return nil
	}

	if verbose {
		for _, r := range report.Removed {
			fmt.Printf("  removed #%d: %s\n", r.ID, r.Content)
		}
	}
	if pruneDryRun {
		fmt.Printf("Would prune %d duplicates (%d quotes kept)\n", len(report.Removed), report.Kept)
	} else {
		fmt.Printf("Finished pruning quotes: (%d duplicates)\n", len(report.Removed))
	}
	return nil
}
