package storage

import "github.com/quoter-cli/quoter/internal/quote"

// PruneReport describes the outcome of a prune operation. The removed set
// is always computed; rendering it is the caller's concern.
type PruneReport struct {
	Removed []RemovedQuote `json:"removed"`
	Kept    int            `json:"kept"`
}

// RemovedQuote records a pruned duplicate with its pre-prune ID.
type RemovedQuote struct {
	ID      int    `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// Prune removes duplicate quotes (same content, author-independent, first
// occurrence wins) and reindexes survivors to dense IDs 1..N in their
// remaining order, then persists. With dryRun set, the report is computed
// but nothing is changed on disk or in memory.
//
// Prune is idempotent: a second run with no intervening add removes
// nothing.
func (s *Store) Prune(dryRun bool) (PruneReport, error) {
	report := PruneReport{}
	for _, d := range quote.Duplicates(s.quotes) {
		report.Removed = append(report.Removed, RemovedQuote{
			ID:      d.ID,
			Author:  d.Author,
			Content: d.Content,
		})
	}
	report.Kept = len(s.quotes) - len(report.Removed)

	if dryRun {
		return report, nil
	}

	// Reindexing applies even when nothing was removed, so manually edited
	// stores with ID gaps come out dense as well.
	pruned := quote.Reindex(quote.Dedup(s.Quotes()))
	if equal(pruned, s.quotes) {
		return report, nil
	}

	prev := s.quotes
	s.quotes = pruned
	if err := s.save(); err != nil {
		s.quotes = prev
		return PruneReport{}, err
	}
	return report, nil
}

func equal(a, b []quote.Quote) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
