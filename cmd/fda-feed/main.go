package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lysyi3m/fda-feed/app/api"
	"github.com/lysyi3m/fda-feed/app/cfg"
	"github.com/lysyi3m/fda-feed/app/feed"
	"github.com/lysyi3m/fda-feed/app/fetch"
	"github.com/lysyi3m/fda-feed/app/source"
	"github.com/lysyi3m/fda-feed/app/tasks"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	loader := source.NewLoader(appCfg.SourcesFile)
	sources, err := loader.LoadAll()
	if err != nil {
		log.Fatal("Failed to load sources:", err)
	}
	slog.Debug("Sources loaded", "count", len(sources))

	processor := feed.NewProcessor(fetch.NewClient(appCfg.UserAgent))

	if !appCfg.Serve {
		runOnce(processor, sources, appCfg.OutputDir)
		return
	}

	serve(processor, sources, appCfg)
}

// runOnce regenerates every feed from scratch and exits: fetch, extract,
// serialize, overwrite the output file. A fetch or generation failure aborts
// the run before anything is written for that source.
func runOnce(processor *feed.Processor, sources []source.Source, outputDir string) {
	ctx := context.Background()

	for _, src := range sources {
		result, err := processor.Run(ctx, src)
		if err != nil {
			log.Fatalf("Failed to generate feed %s: %v", src.Name, err)
		}

		outputPath := filepath.Join(outputDir, src.OutputFile)
		if err := os.WriteFile(outputPath, []byte(result.XML), 0644); err != nil {
			log.Fatalf("Failed to write feed %s: %v", src.Name, err)
		}

		fmt.Printf("Wrote %s with %d items\n", outputPath, result.ItemCount)
	}
}

// serve runs the background refresh scheduler and an HTTP server exposing
// the generated feeds, with graceful shutdown on SIGINT/SIGTERM.
func serve(processor *feed.Processor, sources []source.Source, appCfg *cfg.Cfg) {
	log.Println("Starting fda-feed server...")

	store := feed.NewStore()

	scheduler := tasks.NewScheduler(processor, store, sources)
	scheduler.Start()
	defer scheduler.Stop()

	apiHandler := api.NewHandler(store, sources)
	server := api.NewServer(apiHandler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appCfg.Port)
		log.Printf("Endpoints available:")
		log.Printf("  Feed:          http://localhost:%s/feeds/<name>", appCfg.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appCfg.Port)
		log.Printf("  Sources:       http://localhost:%s/sources", appCfg.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("fda-feed server started successfully!")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	log.Println("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	log.Println("fda-feed server shutdown complete")
}
