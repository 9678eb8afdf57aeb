package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector matches elements that never carry posting or résumé text
const noiseSelector = "nav, footer, header, script, style, noscript, svg, form, .ad, .advertisement, .cookie-banner, .popup"

// blockSelector matches elements that end a line of text
const blockSelector = "p, div, section, article, h1, h2, h3, h4, h5, h6, li, tr, dt, dd, blockquote, pre"

// StripHTML converts pasted HTML to plain text, one line per block element and
// "• " in front of list items
func StripHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").PrependHtml("• ")
	doc.Find(blockSelector).AppendHtml("\n")

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}
	return cleanWhitespace(root.Text()), nil
}

// cleanWhitespace trims every line and drops blank ones
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
