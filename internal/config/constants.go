package config

const (
	envPort           = "PORT"
	envProvider       = "PROVIDER"
	envRosterWarm     = "ROSTER_WARM"
	envSeasonTimezone = "SEASON_TIMEZONE"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"

	defaultPort     = "4000"
	defaultProvider = ProviderStatsNBA
	defaultRosterWarm     = true
	defaultSeasonTimezone = "America/New_York"
	defaultMetricsPort    = "9090"
	defaultServiceName    = "nba-stats-service"
)

// Provider names accepted by PROVIDER.
const (
	ProviderStatsNBA = "statsnba"
	ProviderFixture  = "fixture"
)
