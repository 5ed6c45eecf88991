package config

// Config holds runtime configuration for a single generator run.
type Config struct {
	Sources []string
	Fetch   FetchConfig
	Image   ImageConfig
	Output  OutputConfig
	Metrics MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Sources: listEnvOrDefault(envSources, DefaultSources),
		Fetch:   loadFetch(),
		Image:   loadImage(),
		Output:  loadOutput(),
		Metrics: loadMetrics(),
	}
}
