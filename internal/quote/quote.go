// Package quote defines the core domain types for stored quotes.
package quote

import (
	"fmt"
	"strings"
)

// Anonymous is the author recorded when none is supplied.
const Anonymous = "Anonymous"

// Quote represents a single stored quote.
type Quote struct {
	ID      int    `json:"id"`      // Positive, unique, dense after prune
	Author  string `json:"author"`  // Defaults to Anonymous
	Content string `json:"content"` // Quote body, never empty
}

// New creates a quote with the given ID, applying the Anonymous default
// when author is empty.
func New(id int, author, content string) Quote {
	if author == "" {
		author = Anonymous
	}
	return Quote{ID: id, Author: author, Content: content}
}

// Validate checks that the quote can be stored.
func (q Quote) Validate() error {
	if strings.TrimSpace(q.Content) == "" {
		return &ValidationError{Field: "content", Reason: "must not be empty"}
	}
	if q.ID < 1 {
		return &ValidationError{Field: "id", Reason: "must be positive"}
	}
	return nil
}

// Format renders the quote for human display.
func (q Quote) Format() string {
	return fmt.Sprintf("Quote #%d: %s - %s", q.ID, q.Content, q.Author)
}

// NextID returns the ID to assign to a new quote: max existing ID plus one,
// or 1 for an empty collection. Gaps left by manual edits are not reused.
func NextID(quotes []Quote) int {
	max := 0
	for _, q := range quotes {
		if q.ID > max {
			max = q.ID
		}
	}
	return max + 1
}
