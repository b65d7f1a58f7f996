package feed

import (
	"context"
	"time"
)

// Fetcher downloads a page body as UTF-8 text.
type Fetcher interface {
	Run(ctx context.Context, url string, timeout time.Duration) (string, error)
}
