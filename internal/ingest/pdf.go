package ingest

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/quoter-cli/quoter/internal/quote"
)

// FromPDF extracts plain text from every page and treats each non-empty
// line as one quote. Extraction is best-effort: pages that fail to render
// are skipped.
func FromPDF(path, author string) ([]quote.Quote, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	var quotes []quote.Quote
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			quotes = append(quotes, quote.Quote{Author: author, Content: line})
		}
	}

	return quotes, nil
}
