package config

// OutputConfig names the files a run produces.
type OutputConfig struct {
	ImagePath    string
	SnapshotPath string // empty disables the JSON snapshot
}

func loadOutput() OutputConfig {
	return OutputConfig{
		ImagePath:    envOrDefault(envOutputPath, defaultOutputPath),
		SnapshotPath: envOrDefault(envSnapshotPath, ""),
	}
}
