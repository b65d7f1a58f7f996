package feed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/lysyi3m/fda-feed/app/source"
)

// Processor runs the full pipeline for one source: fetch the page, isolate
// the news section, extract entries, render RSS, and verify the output is
// well-formed before it is handed to the caller. Only the fetch step can
// fail a run on a reachable page; everything downstream is best-effort
// skip-and-continue, so a noisy page degrades to fewer items rather than
// an error.
type Processor struct {
	fetcher   Fetcher
	extractor *Extractor
	generator *Generator
	verifier  *gofeed.Parser
}

func NewProcessor(fetcher Fetcher) *Processor {
	return &Processor{
		fetcher:   fetcher,
		extractor: NewExtractor(),
		generator: NewGenerator(),
		verifier:  gofeed.NewParser(),
	}
}

func (p *Processor) Run(ctx context.Context, src source.Source) (*Result, error) {
	page, err := p.fetcher.Run(ctx, src.PageURL, time.Duration(src.Timeout)*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	section := IsolateSection(page, src.SectionStart, src.SectionEnd)
	slog.Debug("Section isolated", "source", src.Name, "page_bytes", len(page), "section_bytes", len(section))

	entries, err := p.extractor.Run(section, src.BaseURL, src.MaxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to extract entries: %w", err)
	}

	rss, err := p.generator.Run(src, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate feed: %w", err)
	}

	// Re-parse the output before publishing it anywhere
	parsed, err := p.verifier.Parse(strings.NewReader(rss))
	if err != nil {
		return nil, fmt.Errorf("generated feed is not well-formed: %w", err)
	}
	if len(parsed.Items) != len(entries) {
		return nil, fmt.Errorf("generated feed has %d items, expected %d", len(parsed.Items), len(entries))
	}

	slog.Debug("Feed generated", "source", src.Name, "items", len(entries))

	return &Result{
		XML:         rss,
		ItemCount:   len(entries),
		GeneratedAt: time.Now().UTC(),
	}, nil
}
