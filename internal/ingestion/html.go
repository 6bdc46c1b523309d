package ingestion

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

const blockSelector = "p, div, li, ul, ol, br, tr, td, th, h1, h2, h3, h4, h5, h6, section, article, header, footer, pre, blockquote"

// extractHTML returns the body text of an HTML document with scripts and
// styles removed. Block elements are separated by newlines.
func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}

	doc.Find("script, style, noscript, template").Remove()
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml("\n")
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		return doc.Text(), nil
	}
	return body.Text(), nil
}
