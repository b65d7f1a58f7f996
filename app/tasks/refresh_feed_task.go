package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lysyi3m/fda-feed/app/feed"
	"github.com/lysyi3m/fda-feed/app/source"
)

type RefreshFeedTask struct {
	Task
	Source    source.Source
	processor *feed.Processor
	store     *feed.Store
	outputDir string
}

func NewRefreshFeedTask(src source.Source, processor *feed.Processor, store *feed.Store, outputDir string) *RefreshFeedTask {
	return &RefreshFeedTask{
		Task:      NewTask(TaskTypeRefreshFeed, src.Name),
		Source:    src,
		processor: processor,
		store:     store,
		outputDir: outputDir,
	}
}

func (t *RefreshFeedTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	result, err := t.processor.Run(ctx, t.Source)
	if err != nil {
		return fmt.Errorf("failed to refresh feed: %w", err)
	}

	t.store.Set(t.Source.Name, result)

	outputPath := filepath.Join(t.outputDir, t.Source.OutputFile)
	if err := os.WriteFile(outputPath, []byte(result.XML), 0644); err != nil {
		return fmt.Errorf("failed to write feed file: %w", err)
	}

	slog.Info("Task completed",
		"type", "RefreshFeed",
		"source", t.Source.Name,
		"duration", t.GetDuration(),
		"items", result.ItemCount,
		"output", outputPath)

	return nil
}
