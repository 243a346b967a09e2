package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/quoter-cli/quoter/internal/quote"
)

// Styles for human-readable output. They degrade to plain text when the
// color profile is Ascii (--color never or a dumb terminal).
var (
	idStyle      = lipgloss.NewStyle().Faint(true)
	contentStyle = lipgloss.NewStyle().Bold(true)
	authorStyle  = lipgloss.NewStyle().Italic(true)
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON)
// and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if jsonOutput {
		outputJSON(ErrorResponse{Error: msg})
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	os.Exit(code)
}

// diagnostic writes a non-fatal notice to stderr in human mode.
func diagnostic(format string, args ...interface{}) {
	if !jsonOutput {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that report a count.
type StatusResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count,omitempty"`
}

// printQuote renders one quote for human output.
func printQuote(q quote.Quote) {
	fmt.Printf("%s %s %s\n",
		idStyle.Render(fmt.Sprintf("#%d", q.ID)),
		contentStyle.Render(q.Content),
		authorStyle.Render("- "+q.Author))
}

// printQuotes renders a list of quotes for human output.
func printQuotes(quotes []quote.Quote) {
	for _, q := range quotes {
		printQuote(q)
	}
}

// outputQuotes writes quotes in the selected output format. JSON output
// always yields an array, never null.
func outputQuotes(quotes []quote.Quote) error {
	if jsonOutput {
		if quotes == nil {
			quotes = []quote.Quote{}
		}
		return outputJSON(quotes)
	}
	printQuotes(quotes)
	return nil
}
