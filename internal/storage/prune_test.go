package storage

import (
	"testing"

	"github.com/quoter-cli/quoter/internal/quote"
)

func openWith(t *testing.T, quotes []quote.Quote) (*Store, string) {
	t.Helper()
	path := storePath(t)
	writeStore(t, path, quotes)
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return store, path
}

func TestPrune_RemovesDuplicatesAndReindexes(t *testing.T) {
	store, path := openWith(t, []quote.Quote{
		{ID: 1, Author: "A", Content: "X"},
		{ID: 2, Author: "B", Content: "X"},
		{ID: 3, Author: "C", Content: "Y"},
	})

	report, err := store.Prune(false)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}

	if len(report.Removed) != 1 {
		t.Fatalf("Prune() removed %d quotes, want 1", len(report.Removed))
	}
	if report.Removed[0].ID != 2 || report.Removed[0].Content != "X" {
		t.Errorf("removed = %+v, want original id 2 with content X", report.Removed[0])
	}
	if report.Kept != 2 {
		t.Errorf("Kept = %d, want 2", report.Kept)
	}

	want := []quote.Quote{
		{ID: 1, Author: "A", Content: "X"},
		{ID: 2, Author: "C", Content: "Y"},
	}
	got := store.Quotes()
	if len(got) != len(want) {
		t.Fatalf("store has %d quotes after prune, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("quotes[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	// Persisted
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() after prune error = %v", err)
	}
	if reopened.Len() != 2 {
		t.Errorf("reopened Len() = %d, want 2", reopened.Len())
	}
}

func TestPrune_Idempotent(t *testing.T) {
	store, _ := openWith(t, []quote.Quote{
		{ID: 1, Author: "A", Content: "X"},
		{ID: 2, Author: "B", Content: "X"},
		{ID: 3, Author: "C", Content: "Y"},
	})

	if _, err := store.Prune(false); err != nil {
		t.Fatalf("first Prune() error = %v", err)
	}

	report, err := store.Prune(false)
	if err != nil {
		t.Fatalf("second Prune() error = %v", err)
	}
	if len(report.Removed) != 0 {
		t.Errorf("second Prune() removed %d quotes, want 0", len(report.Removed))
	}
}

func TestPrune_ReindexesGapsWithoutDuplicates(t *testing.T) {
	store, _ := openWith(t, []quote.Quote{
		{ID: 2, Author: "A", Content: "X"},
		{ID: 7, Author: "B", Content: "Y"},
	})

	report, err := store.Prune(false)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if len(report.Removed) != 0 {
		t.Errorf("Prune() removed %d quotes, want 0", len(report.Removed))
	}

	got := store.Quotes()
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("IDs after prune = %d, %d, want 1, 2", got[0].ID, got[1].ID)
	}
}

func TestPrune_DryRun(t *testing.T) {
	store, path := openWith(t, []quote.Quote{
		{ID: 1, Author: "A", Content: "X"},
		{ID: 2, Author: "B", Content: "X"},
	})

	report, err := store.Prune(true)
	if err != nil {
		t.Fatalf("Prune(dryRun) error = %v", err)
	}
	if len(report.Removed) != 1 {
		t.Errorf("dry-run report removed %d quotes, want 1", len(report.Removed))
	}

	// Neither memory nor disk changed
	if store.Len() != 2 {
		t.Errorf("Len() = %d after dry-run, want 2", store.Len())
	}
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() after dry-run error = %v", err)
	}
	if reopened.Len() != 2 {
		t.Errorf("reopened Len() = %d after dry-run, want 2", reopened.Len())
	}
}
