package cfg

type Cfg struct {
	// Source configuration
	SourcesFile string
	OutputDir   string

	// Serve mode configuration
	Serve           bool
	Port            string
	RefreshInterval int
	WorkerCount     int

	// Application metadata
	UserAgent string
	Timeout   int
	Debug     bool
	Version   string
}
