// Package storage persists the quote collection as a JSON file, with an
// optional SQLite index for full-text search. The JSON file is the source
// of truth; the index is ephemeral and rebuilt from it.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/quoter-cli/quoter/internal/quote"
)

// ErrCorrupt indicates the quotes file exists but is not a well-formed
// quote list. The file is never overwritten in this state.
var ErrCorrupt = errors.New("malformed quotes file")

// Store is a handle to a quote collection backed by a JSON file. The whole
// collection is loaded at Open and written back atomically on mutation.
type Store struct {
	path   string
	quotes []quote.Quote
}

// Open loads the collection at path. An absent file yields an empty store.
func Open(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Store{path: path}, nil
		}
		return nil, fmt.Errorf("reading quotes file: %w", err)
	}

	var quotes []quote.Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	seen := make(map[int]bool, len(quotes))
	for _, q := range quotes {
		if q.ID < 1 || seen[q.ID] {
			return nil, fmt.Errorf("%w: duplicate or non-positive id %d", ErrCorrupt, q.ID)
		}
		seen[q.ID] = true
	}

	return &Store{path: path, quotes: quotes}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of stored quotes.
func (s *Store) Len() int {
	return len(s.quotes)
}

// Quotes returns a copy of the collection in storage order.
func (s *Store) Quotes() []quote.Quote {
	out := make([]quote.Quote, len(s.quotes))
	copy(out, s.quotes)
	return out
}

// Add validates and appends a new quote, assigning the next free ID, and
// persists the collection. An empty author becomes quote.Anonymous.
func (s *Store) Add(author, content string) (quote.Quote, error) {
	q := quote.New(quote.NextID(s.quotes), author, content)
	if err := q.Validate(); err != nil {
		return quote.Quote{}, err
	}

	s.quotes = append(s.quotes, q)
	if err := s.save(); err != nil {
		s.quotes = s.quotes[:len(s.quotes)-1]
		return quote.Quote{}, err
	}
	return q, nil
}

// Ingest adds a batch of quotes, skipping entries whose content is already
// present (or repeated within the batch) and entries that fail validation.
// IDs on incoming quotes are ignored. The collection is persisted once.
func (s *Store) Ingest(incoming []quote.Quote) (added, skipped int, err error) {
	seen := make(map[string]bool, len(s.quotes))
	for _, q := range s.quotes {
		seen[q.Content] = true
	}

	before := len(s.quotes)
	for _, in := range incoming {
		q := quote.New(quote.NextID(s.quotes), in.Author, in.Content)
		if q.Validate() != nil || seen[q.Content] {
			skipped++
			continue
		}
		seen[q.Content] = true
		s.quotes = append(s.quotes, q)
		added++
	}

	if added == 0 {
		return 0, skipped, nil
	}
	if err := s.save(); err != nil {
		s.quotes = s.quotes[:before]
		return 0, skipped, err
	}
	return added, skipped, nil
}

// QuoteByID returns the quote with the given ID.
func (s *Store) QuoteByID(id int) (quote.Quote, error) {
	for _, q := range s.quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return quote.Quote{}, &quote.NotFoundError{ID: id}
}

// QuotesByAuthor returns all quotes by the given author, matched exactly
// and case-sensitively, in storage order. Unless showDuplicates is set,
// quotes repeating an earlier returned quote's content are suppressed.
// An unknown author yields an empty result, not an error.
func (s *Store) QuotesByAuthor(author string, showDuplicates bool) []quote.Quote {
	var matched []quote.Quote
	seen := make(map[string]bool)
	for _, q := range s.quotes {
		if q.Author != author {
			continue
		}
		if !showDuplicates && seen[q.Content] {
			continue
		}
		seen[q.Content] = true
		matched = append(matched, q)
	}
	return matched
}

// Query resolves a quote selection. An id that resolves to a stored quote
// takes priority and returns exactly that quote; otherwise the author
// selector is tried. id == 0 means no id was supplied; any other value,
// negative included, counts as an explicit id selector. With no selector
// at all, quote.ErrUsage is returned.
func (s *Store) Query(id int, author string, showDuplicates bool) ([]quote.Quote, error) {
	if id != 0 {
		if q, err := s.QuoteByID(id); err == nil {
			return []quote.Quote{q}, nil
		}
	}
	if author != "" {
		return s.QuotesByAuthor(author, showDuplicates), nil
	}
	if id != 0 {
		return nil, &quote.NotFoundError{ID: id}
	}
	return nil, fmt.Errorf("%w: provide --id or --author", quote.ErrUsage)
}

// List returns the collection in storage order. Unless showDuplicates is
// set, quotes repeating an earlier quote's content are suppressed.
func (s *Store) List(showDuplicates bool) []quote.Quote {
	if showDuplicates {
		return s.Quotes()
	}
	return quote.Dedup(s.Quotes())
}

// Random returns one quote selected uniformly at random.
func (s *Store) Random() (quote.Quote, error) {
	if len(s.quotes) == 0 {
		return quote.Quote{}, quote.ErrEmptyStore
	}
	return s.quotes[rand.Intn(len(s.quotes))], nil
}

// save writes the collection back to disk. The file is written to a
// temporary sibling and renamed into place so a failed write leaves the
// previous contents intact.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.quotes, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding quotes: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".quotes-*.json")
	if err != nil {
		return fmt.Errorf("creating temp quotes file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing quotes file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing quotes file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing quotes file: %w", err)
	}
	return nil
}
