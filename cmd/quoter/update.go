package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/quoter-cli/quoter/internal/update"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update quoter from its git repository",
	Long: `Fetch and fast-forward the git checkout quoter was installed from.
Requires the git client. A checkout marked with a .devenv file is never
merged into. Update failures never touch the quote store.`,
	RunE: runUpdate,
}

// UpdateResponse is the JSON response for the update command.
type UpdateResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Output  string `json:"output,omitempty"`
}

func runUpdate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	cfg := mustLoadConfig()

	exe, err := os.Executable()
	if err != nil {
		exitWithError(ExitError, "locating executable: %v", err)
	}

	updater, err := update.NewGitUpdater(exe, cfg.UpdateRemote, cfg.UpdateBranch)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	result, err := updater.FetchUpdates(cmd.Context())
	if err != nil {
		if errors.Is(err, update.ErrDevEnvironment) {
			diagnostic("Development environment detected, skipping update.")
			if jsonOutput {
				return outputJSON(UpdateResponse{Status: "skipped"})
			}
			return nil
		}
		exitWithError(ExitError, "updating: %v", err)
	}
	logger.Debug("fetched updates",
		zap.Bool("up_to_date", result.UpToDate),
		zap.String("output", result.Output))

	version, err := updater.CurrentVersionTag(cmd.Context())
	if err != nil {
		logger.Debug("reading version tag failed", zap.Error(err))
	}

	if jsonOutput {
		status := "updated"
		if result.UpToDate {
			status = "up-to-date"
		}
		return outputJSON(UpdateResponse{Status: status, Version: version, Output: result.Output})
	}

	if result.UpToDate {
		fmt.Println("Already up to date.")
	} else {
		fmt.Println(result.Output)
	}
	if version != "" {
		fmt.Printf("Current version: %s\n", version)
	}
	return nil
}
