package feed

import (
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// entryPattern matches the dated bullet lines of the listing section:
//
//	1/21/2026 - <a href="/cosmetics/...">Title</a>
//
// The date may use a 2- or 4-digit year, the hyphen may be padded with
// arbitrary whitespace, and the anchor (including its inner text) may span
// multiple lines, hence (?is).
var entryPattern = regexp.MustCompile(`(?is)(\d{1,2}/\d{1,2}/\d{2,4})\s*-\s*.*?<a[^>]+href="([^"]+)"[^>]*>\s*(.*?)\s*</a>`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// dedupKey identifies an entry for deduplication: titles are free text, so
// the key is a tuple rather than a delimited concatenation.
type dedupKey struct {
	title string
	url   string
	date  string // calendar date only, YYYY-MM-DD
}

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Run scans section text for dated news bullets and returns normalized
// entries: title stripped of nested markup, href resolved against baseURL,
// date parsed to midnight UTC. Candidates with malformed dates or empty
// titles are dropped silently; the page is semi-structured and such noise is
// expected. Duplicates by (title, url, calendar date) collapse to the first
// occurrence. The result is sorted newest first (stable on ties) and capped
// at maxItems. Zero matches is not an error.
func (e *Extractor) Run(section, baseURL string, maxItems int) ([]Entry, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	entries := []Entry{}
	seen := make(map[dedupKey]bool)

	for _, m := range entryPattern.FindAllStringSubmatch(section, -1) {
		dateStr, href, rawTitle := m[1], strings.TrimSpace(m[2]), m[3]

		publishedAt, err := ParseSlashDate(dateStr)
		if err != nil {
			slog.Debug("Skipping entry with unparseable date", "date", dateStr, "error", err)
			continue
		}

		title, err := e.cleanTitle(rawTitle)
		if err != nil {
			slog.Debug("Skipping entry with unparseable title", "title", rawTitle, "error", err)
			continue
		}
		if title == "" {
			continue
		}

		link, err := e.resolveLink(base, href)
		if err != nil {
			slog.Debug("Skipping entry with unparseable href", "href", href, "error", err)
			continue
		}

		key := dedupKey{title: title, url: link, date: publishedAt.Format("2006-01-02")}
		if seen[key] {
			continue
		}
		seen[key] = true

		entries = append(entries, Entry{
			Title:       title,
			URL:         link,
			PublishedAt: publishedAt,
		})
	}

	// Newest first; ties keep source-document order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PublishedAt.After(entries[j].PublishedAt)
	})

	if len(entries) > maxItems {
		entries = entries[:maxItems]
	}

	return entries, nil
}

// cleanTitle strips nested markup and decodes HTML entities from the inner
// text of a matched anchor, then collapses whitespace runs.
func (e *Extractor) cleanTitle(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse title markup: %w", err)
	}

	title := whitespacePattern.ReplaceAllString(doc.Text(), " ")
	return strings.TrimSpace(title), nil
}

// resolveLink resolves href against the source base origin. Absolute hrefs
// pass through unchanged.
func (e *Extractor) resolveLink(base *url.URL, href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("failed to parse href: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}
