// Package parser turns a results-profile page into the player name and the
// raw result rows the statistics engine consumes. It is the only package
// that knows anything about markup.
package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/myusername/poker-results-scraper/pkg/models"
)

// ExtractProfile reads the player name and the results-table rows from the
// page HTML. A missing name or an empty results table is not an error: the
// engine substitutes a placeholder name and produces a zero report. Only
// unparseable markup fails.
func ExtractProfile(html string) (string, []models.RowRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", nil, fmt.Errorf("error parsing profile HTML: %w", err)
	}

	name := strings.TrimSpace(doc.Find("h1").First().Text())
	rows := extractRows(doc)

	return name, rows, nil
}

// extractRows locates the results table and converts each data row into a
// RowRecord. The results block is the container following the "Results"
// heading; pages without such a heading fall back to the first table.
func extractRows(doc *goquery.Document) []models.RowRecord {
	section := resultsSection(doc)
	if section == nil {
		return nil
	}

	var rows []models.RowRecord
	section.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		// Header and separator rows carry th cells or too few columns.
		if cells.Length() < 2 {
			return
		}

		record := models.RowRecord{
			DateText: strings.TrimSpace(cells.Eq(1).Text()),
		}

		nameCell := cells.Eq(0)
		if link := nameCell.Find("a").First(); link.Length() > 0 {
			// Prefer the link text: name cells often carry decorative
			// icons whose alt text must not reach the money parser.
			record.EventNameText = strings.TrimSpace(link.Text())
			record.EventIsAnchor = true
		} else {
			record.EventNameText = strings.TrimSpace(nameCell.Text())
		}

		for i := 2; i < cells.Length(); i++ {
			record.CurrencyCellTexts = append(record.CurrencyCellTexts,
				strings.TrimSpace(cells.Eq(i).Text()))
		}

		rows = append(rows, record)
	})

	return rows
}

// resultsSection returns the element holding the results table, or nil when
// the page has none.
func resultsSection(doc *goquery.Document) *goquery.Selection {
	var section *goquery.Selection

	doc.Find("h4").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(h.Text()), "results") {
			return true
		}
		if next := h.Next(); next.Length() > 0 {
			section = next
			return false
		}
		return true
	})
	if section != nil {
		return section
	}

	if table := doc.Find("table").First(); table.Length() > 0 {
		return table
	}
	return nil
}
