package config

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port       string
	Provider   string
	RosterWarm bool
	StatsNBA   StatsNBAConfig
	Season     SeasonConfig
	Metrics    MetricsConfig
	Log        LogConfig
}

// SeasonConfig controls how the current season label is derived.
type SeasonConfig struct {
	Timezone string
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		Provider:   envOrDefault(envProvider, defaultProvider),
		RosterWarm: boolEnvOrDefault(envRosterWarm, defaultRosterWarm),
		StatsNBA:   loadStatsNBA(),
		Season: SeasonConfig{
			Timezone: envOrDefault(envSeasonTimezone, defaultSeasonTimezone),
		},
		Metrics: loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, ""),
			Format: envOrDefault(envLogFormat, ""),
		},
	}
}
