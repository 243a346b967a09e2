package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listShowDuplicates bool

func init() {
	listCmd.Flags().BoolVar(&listShowDuplicates, "show-duplicates", false, "Include quotes with duplicated content")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all quotes",
	Long: `List the whole collection in storage order. Quotes repeating an
earlier quote's content are hidden unless --show-duplicates is given.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)

	quotes := store.List(listShowDuplicates)
	if !jsonOutput && len(quotes) == 0 {
		fmt.Println("No quotes in store.")
		return nil
	}
	return outputQuotes(quotes)
}
