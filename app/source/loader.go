package source

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lysyi3m/fda-feed/app/cfg"
)

// Default returns the built-in FDA Cosmetics News & Events source. It is
// used whenever no sources file is configured, so a zero-flag run generates
// exactly one feed from the FDA cosmetics page. MaxItems and Timeout are
// left unset here and filled in by the loader defaults.
func Default() Source {
	return Source{
		Name:         "fda-cosmetics",
		PageURL:      "https://www.fda.gov/cosmetics/cosmetics-news-events",
		BaseURL:      "https://www.fda.gov",
		Title:        "FDA Cosmetics News & Events",
		Description:  "Unofficial RSS feed generated from FDA Cosmetics News & Events (Recent News & Updates).",
		SectionStart: "Recent News & Updates",
		SectionEnd:   "Recent Federal Register Notices",
		OutputFile:   "feed.xml",
	}
}

// Loader handles loading and validation of source page definitions
type Loader struct {
	path string
}

// NewLoader creates a new source loader. An empty path selects the built-in
// default source.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// LoadAll loads all source definitions from the configured YAML file, or the
// built-in default source when no file is configured.
func (l *Loader) LoadAll() ([]Source, error) {
	var raw []Source

	if l.path == "" {
		raw = []Source{Default()}
	} else {
		data, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read sources file: %w", err)
		}

		var file sourcesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}

		if len(file.Sources) == 0 {
			return nil, fmt.Errorf("sources file %s defines no sources", l.path)
		}
		raw = file.Sources
	}

	sources := make([]Source, 0, len(raw))
	for i := range raw {
		src := raw[i]
		if err := l.setDefaults(&src); err != nil {
			return nil, fmt.Errorf("invalid source %q: %w", src.Name, err)
		}
		if err := l.validate(&src); err != nil {
			return nil, fmt.Errorf("invalid source %q: %w", src.Name, err)
		}
		sources = append(sources, src)
	}

	return sources, nil
}

// setDefaults applies default values to a source definition
func (l *Loader) setDefaults(src *Source) error {
	if src.BaseURL == "" && src.PageURL != "" {
		u, err := url.Parse(src.PageURL)
		if err != nil {
			return fmt.Errorf("failed to parse page URL: %w", err)
		}
		src.BaseURL = u.Scheme + "://" + u.Host
	}
	if src.OutputFile == "" {
		src.OutputFile = src.Name + ".xml"
	}
	if src.MaxItems == 0 {
		src.MaxItems = 50
	}
	if src.Timeout == 0 {
		src.Timeout = cfg.Get().Timeout // seconds
	}
	return nil
}

// validate validates a source definition
func (l *Loader) validate(src *Source) error {
	if src.Name == "" {
		return fmt.Errorf("source name is required")
	}
	if src.PageURL == "" {
		return fmt.Errorf("page URL is required")
	}
	if _, err := url.Parse(src.BaseURL); err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if src.MaxItems < 0 {
		return fmt.Errorf("max items must be non-negative")
	}
	if src.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	return nil
}
