// Package scraper fetches the visible text of an external profile page.
// It is strictly best-effort: the skill pipeline must tolerate an
// unreachable or protected profile, so every failure degrades to an empty
// string instead of an error.
package scraper

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// Some sites block non-browser agents, so we present a realistic one.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// maxContentChars caps the extracted text so a huge page does not blow
	// up the prompt sent to the model.
	maxContentChars = 20000
)

var whitespace = regexp.MustCompile(`\s+`)

// Scraper issues single best-effort fetches. No retries.
type Scraper struct {
	client *http.Client
}

// New creates a Scraper. A nil client gets a default with a 30s timeout.
func New(client *http.Client) *Scraper {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Scraper{client: client}
}

// Scrape fetches url and returns the visible text content of the document
// body, with script and style markup stripped. An empty url returns ""
// immediately without a network call, and any network, status or parse
// failure also returns "".
func (s *Scraper) Scrape(ctx context.Context, url string) string {
	if url == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	doc.Find("script, style, noscript").Remove()

	text := strings.TrimSpace(whitespace.ReplaceAllString(doc.Find("body").Text(), " "))
	if len(text) > maxContentChars {
		text = text[:maxContentChars]
	}
	return text
}
