package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CellTexts extracts the visible text of every candidate day cell from
// rendered calendar HTML. The cell-selector ladder is tried in order and
// the first selector that matches anything wins. No matches is not an
// error: a month can legitimately render without offers.
func CellTexts(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse calendar html: %w", err)
	}

	for _, sel := range cellSelectors {
		var texts []string
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			if t := strings.TrimSpace(s.Text()); t != "" {
				texts = append(texts, t)
			}
		})
		if len(texts) > 0 {
			return texts, nil
		}
	}
	return nil, nil
}
