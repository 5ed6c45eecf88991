package config

import "time"

const (
	envSources      = "BOINC_SOURCES"
	envOutputPath   = "OUTPUT_PATH"
	envSnapshotPath = "SNAPSHOT_PATH"
	envHTTPTimeout  = "HTTP_TIMEOUT"
	envFetchRetries = "FETCH_RETRIES"
	envFetchBackoff = "FETCH_BACKOFF"
	envUserAgent    = "USER_AGENT"
	envImageWidth   = "IMAGE_WIDTH"
	envImageHeight  = "IMAGE_HEIGHT"
	envImageScale   = "IMAGE_SCALE"
	envMetricsOn    = "METRICS_ENABLED"
	envMetricsFile  = "METRICS_TEXTFILE"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultOutputPath  = "stats.png"
	defaultUserAgent   = "boinc-statistics-image-generator"
	defaultHTTPTimeout = 10 * time.Second
	// A single attempt keeps the default run fail-fast.
	defaultFetchRetries = 1
	defaultFetchBackoff = 500 * time.Millisecond

	defaultImageWidth  = 300
	defaultImageHeight = 100
	defaultImageScale  = 1

	defaultServiceName = "boinc-statistics-image-generator"
)

// DefaultSources are the BOINC userw endpoints rendered when nothing else is configured.
var DefaultSources = []string{
	"https://boinc.bakerlab.org/rosetta/userw.php?id=2375195",
	"https://einsteinathome.org/userw.php?id=1041241",
}
