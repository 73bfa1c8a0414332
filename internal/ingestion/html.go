package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractJobText extracts readable job-description text from saved posting
// HTML. It strips non-content elements and flattens the body to plain text;
// per-platform selectors are deliberately not modeled here.
func ExtractJobText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &HTMLParseError{Cause: err}
	}

	doc.Find("script, style, noscript, nav, header, footer, iframe").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}

	var sb strings.Builder
	body.Find("h1, h2, h3, h4, h5, h6, p, li, td, div, span").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes; container text would duplicate children.
		if s.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Fallback: whole-body text with collapsed whitespace.
		text = body.Text()
	}

	return CleanText(text), nil
}
