package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/quoter-cli/quoter/internal/quote"
	_ "modernc.org/sqlite"
)

// Index wraps the SQLite full-text search index. It is a disposable cache
// over the JSON file and is rebuilt from it before searching.
type Index struct {
	db *sql.DB
}

// OpenIndex opens or creates the search index at the given path.
func OpenIndex(path string) (*Index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createIndexSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating index schema: %w", err)
	}

	return &Index{db: db}, nil
}

// Close closes the index.
func (ix *Index) Close() error {
	return ix.db.Close()
}

func createIndexSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS quotes (
			id INTEGER PRIMARY KEY,
			author TEXT NOT NULL,
			content TEXT NOT NULL
		);

		-- Full-text search virtual table (standalone, not external content)
		CREATE VIRTUAL TABLE IF NOT EXISTS quotes_fts USING fts5(
			id,
			author,
			content
		);
	`

	_, err := db.Exec(schema)
	return err
}

// Rebuild clears the index and repopulates it from the given collection.
// Returns the number of indexed quotes.
func (ix *Index) Rebuild(quotes []quote.Quote) (int, error) {
	tx, err := ix.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM quotes"); err != nil {
		return 0, fmt.Errorf("clearing quotes table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM quotes_fts"); err != nil {
		return 0, fmt.Errorf("clearing quotes_fts table: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO quotes (id, author, content) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing quotes insert: %w", err)
	}
	defer stmt.Close()

	ftsStmt, err := tx.Prepare("INSERT INTO quotes_fts (id, author, content) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for _, q := range quotes {
		if _, err := stmt.Exec(q.ID, q.Author, q.Content); err != nil {
			return 0, fmt.Errorf("inserting quote %d: %w", q.ID, err)
		}
		if _, err := ftsStmt.Exec(q.ID, q.Author, q.Content); err != nil {
			return 0, fmt.Errorf("inserting fts for %d: %w", q.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing rebuild: %w", err)
	}
	return len(quotes), nil
}

// Search performs a full-text search over authors and contents.
func (ix *Index) Search(query string, limit int) ([]quote.Quote, error) {
	ftsQuery := prepareFTSQuery(query)

	rows, err := ix.db.Query(`
		SELECT id, author, content
		FROM quotes
		WHERE id IN (SELECT id FROM quotes_fts WHERE quotes_fts MATCH ?)
		ORDER BY id
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanQuotes(rows)
}

// Count returns the total number of indexed quotes.
func (ix *Index) Count() (int, error) {
	var count int
	err := ix.db.QueryRow("SELECT COUNT(*) FROM quotes").Scan(&count)
	return count, err
}

func scanQuotes(rows *sql.Rows) ([]quote.Quote, error) {
	var quotes []quote.Quote
	for rows.Next() {
		var q quote.Quote
		if err := rows.Scan(&q.ID, &q.Author, &q.Content); err != nil {
			return nil, fmt.Errorf("scanning quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading search results: %w", err)
	}
	return quotes, nil
}

// prepareFTSQuery quotes search input so FTS5 operators in user text don't
// break the query. FTS5 uses double quotes for phrase matching.
func prepareFTSQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	if strings.ContainsAny(query, "\"*+-:(){}[]^~") {
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
