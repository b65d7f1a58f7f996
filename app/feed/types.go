package feed

import (
	"time"
)

// Entry is one normalized news item extracted from a listing page.
type Entry struct {
	Title       string
	URL         string    // always absolute
	PublishedAt time.Time // midnight UTC, no finer precision
}

// Result is a fully generated feed for one source.
type Result struct {
	XML         string
	ItemCount   int
	GeneratedAt time.Time
}
