package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Source configuration
	SourcesFile string `long:"sources-file" env:"SOURCES_FILE" description:"Optional YAML file with source page definitions (built-in FDA source used when empty)"`
	OutputDir   string `long:"output-dir" env:"OUTPUT_DIR" default:"." description:"Directory feed files are written to"`

	// Serve mode configuration
	Serve           bool   `long:"serve" env:"SERVE" description:"Run as an HTTP server with periodic feed refresh instead of a one-shot generation"`
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port (serve mode)"`
	RefreshInterval int    `long:"refresh-interval" env:"REFRESH_INTERVAL" default:"900" description:"Feed refresh interval in seconds (serve mode)"`
	WorkerCount     int    `long:"worker-count" env:"WORKER_COUNT" default:"2" description:"Number of background workers for feed refresh (serve mode)"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Mozilla/5.0 (RSS generator; GitHub Pages)" description:"User agent string for HTTP requests"`
	Timeout   int    `long:"timeout" env:"TIMEOUT" default:"30" description:"Page fetch timeout in seconds"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		SourcesFile:     raw.SourcesFile,
		OutputDir:       raw.OutputDir,
		Serve:           raw.Serve,
		Port:            raw.Port,
		RefreshInterval: raw.RefreshInterval,
		WorkerCount:     raw.WorkerCount,
		UserAgent:       raw.UserAgent,
		Timeout:         raw.Timeout,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
