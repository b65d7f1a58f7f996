package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lysyi3m/fda-feed/app/feed"
	"github.com/lysyi3m/fda-feed/app/source"
)

type stubFetcher struct {
	page string
	err  error
}

func (f *stubFetcher) Run(ctx context.Context, url string, timeout time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.page, nil
}

func testSource() source.Source {
	return source.Source{
		Name:         "fda-cosmetics",
		PageURL:      "https://www.fda.gov/cosmetics/cosmetics-news-events",
		BaseURL:      "https://www.fda.gov",
		Title:        "FDA Cosmetics News & Events",
		SectionStart: "Recent News & Updates",
		SectionEnd:   "Recent Federal Register Notices",
		OutputFile:   "feed.xml",
		MaxItems:     50,
		Timeout:      30,
	}
}

func TestRefreshFeedTaskExecute(t *testing.T) {
	page := `1/21/2026 - <a href="/x">Title A</a>`
	processor := feed.NewProcessor(&stubFetcher{page: page})
	store := feed.NewStore()
	outputDir := t.TempDir()

	task := NewRefreshFeedTask(testSource(), processor, store, outputDir)
	task.Start()

	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	result, ok := store.Get("fda-cosmetics")
	if !ok {
		t.Fatal("Refresh should publish the feed to the store")
	}
	if result.ItemCount != 1 {
		t.Errorf("Expected 1 item, got %d", result.ItemCount)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "feed.xml"))
	if err != nil {
		t.Fatalf("Refresh should write the feed file: %v", err)
	}
	if !strings.Contains(string(data), "<title>Title A</title>") {
		t.Error("Written feed should contain the extracted entry")
	}
}

func TestRefreshFeedTaskFetchFailure(t *testing.T) {
	processor := feed.NewProcessor(&stubFetcher{err: fmt.Errorf("connection refused")})
	store := feed.NewStore()
	outputDir := t.TempDir()

	task := NewRefreshFeedTask(testSource(), processor, store, outputDir)
	task.Start()

	if err := task.Execute(context.Background()); err == nil {
		t.Fatal("A fetch failure should fail the task")
	}

	if _, ok := store.Get("fda-cosmetics"); ok {
		t.Error("A failed refresh must not publish anything to the store")
	}
	if _, err := os.Stat(filepath.Join(outputDir, "feed.xml")); !os.IsNotExist(err) {
		t.Error("A failed refresh must not write an output file")
	}
}

func TestTaskRetryBookkeeping(t *testing.T) {
	task := NewTask(TaskTypeRefreshFeed, "fda-cosmetics")

	if task.GetRetryCount() != 0 {
		t.Errorf("New task should start with 0 retries, got %d", task.GetRetryCount())
	}
	if !task.CanRetry() {
		t.Error("New task should be retryable")
	}

	for i := 0; i < DefaultMaxRetries; i++ {
		task.IncrementRetryCount()
	}
	if task.CanRetry() {
		t.Error("Task at max retries should not be retryable")
	}
}
