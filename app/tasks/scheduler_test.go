package tasks

import (
	"os"
	"testing"

	"github.com/lysyi3m/fda-feed/app/cfg"
	"github.com/lysyi3m/fda-feed/app/feed"
	"github.com/lysyi3m/fda-feed/app/source"
)

func setupTestConfig() {
	// Clear os.Args to prevent config parsing from failing on test flags
	oldArgs := os.Args
	os.Args = []string{"test"}
	defer func() { os.Args = oldArgs }()

	cfg.Load()
}

func TestSchedulerStopThenEnqueue(t *testing.T) {
	setupTestConfig()

	processor := feed.NewProcessor(&stubFetcher{page: ""})
	store := feed.NewStore()

	scheduler := NewScheduler(processor, store, []source.Source{})
	scheduler.Start()
	scheduler.Stop()

	// A retry goroutine may outlive Stop and attempt a late enqueue; it
	// must get the context error back, never a send on a closed channel.
	task := NewRefreshFeedTask(testSource(), processor, store, t.TempDir())
	if err := scheduler.EnqueueTask(task); err == nil {
		t.Error("Enqueue after Stop should return the cancelled context error")
	}
}
