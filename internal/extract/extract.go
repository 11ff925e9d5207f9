// Extract reduces HTML documents to the plain text that charcount scans.
package extract

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// nonVisible lists elements whose text never renders in the page body;
// head covers title and meta.
const nonVisible = "head, script, style, noscript, template"

// ToText extracts the visible text of an HTML document.
//
// Parameters:
//   - content: io.Reader containing HTML content
//   - selector: optional CSS selector; only text of matching elements is kept
//   - readable: if true, reduce the page to its main article with go-readability first
//   - baseURL: optional URL for context during readability extraction (can be nil)
func ToText(content io.Reader, selector string, readable bool, baseURL *url.URL) (string, error) {
	if readable {
		article, err := extractMainContent(content, baseURL)
		if err != nil {
			return "", err
		}
		if selector == "" {
			return article.TextContent, nil
		}
		// apply the selector to the extracted article markup
		content = strings.NewReader(article.Content)
	}

	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find(nonVisible).Remove()

	if selector == "" {
		return doc.Text(), nil
	}
	return textWithSelector(doc, selector)
}

// extractMainContent uses go-readability to extract the main article content
func extractMainContent(content io.Reader, baseURL *url.URL) (readability.Article, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(content, baseURL)
	if err != nil {
		return readability.Article{}, fmt.Errorf("failed to extract main content: %w", err)
	}
	return article, nil
}

// textWithSelector joins the text of every element matching selector, one per line.
func textWithSelector(doc *goquery.Document, selector string) (string, error) {
	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	parts := make([]string, 0, selection.Length())
	selection.Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, s.Text())
	})
	return strings.Join(parts, "\n"), nil
}
