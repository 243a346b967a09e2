package storage

import (
	"path/filepath"
	"testing"

	"github.com/quoter-cli/quoter/internal/quote"
)

func openIndex(t *testing.T) *Index {
	t.Helper()
	index, err := OpenIndex(filepath.Join(t.TempDir(), "quotes.db"))
	if err != nil {
		t.Fatalf("OpenIndex() error = %v", err)
	}
	t.Cleanup(func() { index.Close() })
	return index
}

var indexFixture = []quote.Quote{
	{ID: 1, Author: "Rob Pike", Content: "Clear is better than clever."},
	{ID: 2, Author: "Ken Thompson", Content: "When in doubt, use brute force."},
	{ID: 3, Author: "Anonymous", Content: "Simplicity wins."},
}

func TestRebuild(t *testing.T) {
	index := openIndex(t)

	n, err := index.Rebuild(indexFixture)
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Rebuild() indexed %d quotes, want 3", n)
	}

	count, err := index.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}
}

func TestRebuild_ReplacesPreviousContents(t *testing.T) {
	index := openIndex(t)

	if _, err := index.Rebuild(indexFixture); err != nil {
		t.Fatalf("first Rebuild() error = %v", err)
	}
	if _, err := index.Rebuild(indexFixture[:1]); err != nil {
		t.Fatalf("second Rebuild() error = %v", err)
	}

	count, err := index.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d after rebuild with 1 quote, want 1", count)
	}
}

func TestSearch_MatchesContent(t *testing.T) {
	index := openIndex(t)
	if _, err := index.Rebuild(indexFixture); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	results, err := index.Search("clever", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Search(clever) returned %d quotes, want 1", len(results))
	}
	if results[0].ID != 1 {
		t.Errorf("Search(clever) returned id %d, want 1", results[0].ID)
	}
}

func TestSearch_MatchesAuthor(t *testing.T) {
	index := openIndex(t)
	if _, err := index.Rebuild(indexFixture); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	results, err := index.Search("Thompson", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 || results[0].ID != 2 {
		t.Errorf("Search(Thompson) = %v, want quote 2", results)
	}
}

func TestSearch_NoMatch(t *testing.T) {
	index := openIndex(t)
	if _, err := index.Rebuild(indexFixture); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	results, err := index.Search("nonexistent", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Search(nonexistent) returned %d quotes, want 0", len(results))
	}
}

func TestSearch_SpecialCharacters(t *testing.T) {
	index := openIndex(t)
	if _, err := index.Rebuild(indexFixture); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	// FTS5 operators in user input must not break the query
	if _, err := index.Search(`doubt "brute*`, 10); err != nil {
		t.Errorf("Search() with special characters error = %v", err)
	}
}

func TestPrepareFTSQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"simple", "simple"},
		{"  padded  ", "padded"},
		{`has "quotes"`, `"has ""quotes"""`},
		{"star*", `"star*"`},
		{"", ""},
	}

	for _, tt := range tests {
		if got := prepareFTSQuery(tt.in); got != tt.want {
			t.Errorf("prepareFTSQuery(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
