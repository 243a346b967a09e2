package quote

// Duplicate comparison is exact string equality over Content. Author is
// irrelevant: two quotes with the same text by different authors are
// duplicates, and the earliest occurrence in collection order wins.

// Duplicates returns the quotes whose content repeats an earlier quote's
// content, in collection order.
func Duplicates(quotes []Quote) []Quote {
	seen := make(map[string]bool, len(quotes))
	var dups []Quote
	for _, q := range quotes {
		if seen[q.Content] {
			dups = append(dups, q)
			continue
		}
		seen[q.Content] = true
	}
	return dups
}

// Dedup returns the quotes with later duplicates removed, preserving the
// relative order of survivors. IDs are left untouched; reindexing is the
// caller's concern.
func Dedup(quotes []Quote) []Quote {
	seen := make(map[string]bool, len(quotes))
	kept := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		if seen[q.Content] {
			continue
		}
		seen[q.Content] = true
		kept = append(kept, q)
	}
	return kept
}

// Reindex assigns dense IDs 1..N in slice order and returns the slice.
func Reindex(quotes []Quote) []Quote {
	for i := range quotes {
		quotes[i].ID = i + 1
	}
	return quotes
}
