package source

// Source describes one agency news-listing page a feed is generated from.
type Source struct {
	Name         string `yaml:"name"` // used as output feed identifier
	PageURL      string `yaml:"page_url"`
	BaseURL      string `yaml:"base_url"` // origin relative links are resolved against
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	SectionStart string `yaml:"section_start"`
	SectionEnd   string `yaml:"section_end"`
	OutputFile   string `yaml:"output_file"`
	MaxItems     int    `yaml:"max_items"`
	Timeout      int    `yaml:"timeout"` // seconds
}

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}
