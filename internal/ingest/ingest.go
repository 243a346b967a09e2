// Package ingest reads quotes out of external files for bulk import.
package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/quoter-cli/quoter/internal/quote"
)

// Supported import formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// DetectFormat guesses the import format from the file extension,
// defaulting to text.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".pdf":
		return FormatPDF
	default:
		return FormatText
	}
}

// FromFile reads quotes from path in the given format (one of the Format
// constants; empty means detect from the extension). author is applied to
// entries that don't carry their own.
func FromFile(path, author, format string) ([]quote.Quote, error) {
	if format == "" {
		format = DetectFormat(path)
	}

	switch format {
	case FormatPDF:
		return FromPDF(path, author)
	case FormatJSON, FormatText:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening import file: %w", err)
		}
		defer f.Close()
		if format == FormatJSON {
			return FromJSON(f, author)
		}
		return FromText(f, author)
	default:
		return nil, fmt.Errorf("unknown import format %q", format)
	}
}

// FromText reads one quote per non-empty line.
func FromText(r io.Reader, author string) ([]quote.Quote, error) {
	var quotes []quote.Quote
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		quotes = append(quotes, quote.Quote{Author: author, Content: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return quotes, nil
}

// jsonRecord is the accepted JSON import shape. IDs are ignored; the store
// assigns its own.
type jsonRecord struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// FromJSON reads an array of {author, content} records. Records without an
// author fall back to the given one.
func FromJSON(r io.Reader, author string) ([]quote.Quote, error) {
	var records []jsonRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}

	quotes := make([]quote.Quote, 0, len(records))
	for _, rec := range records {
		a := rec.Author
		if a == "" {
			a = author
		}
		quotes = append(quotes, quote.Quote{Author: a, Content: rec.Content})
	}
	return quotes, nil
}
