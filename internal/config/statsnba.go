package config

import "time"

const (
	envStatsBaseURL   = "STATSNBA_BASE_URL"
	envStatsUserAgent = "STATSNBA_USER_AGENT"
	envStatsReferer   = "STATSNBA_REFERER"
	envStatsTimeout   = "STATSNBA_TIMEOUT"

	defaultStatsBaseURL = "https://stats.nba.com/stats"
	// stats.nba.com is slow to answer cold requests.
	defaultStatsTimeout = 15 * time.Second
)

// StatsNBAConfig controls how we talk to stats.nba.com. Empty header values
// fall back to the client's browser-like defaults.
type StatsNBAConfig struct {
	BaseURL   string
	UserAgent string
	Referer   string
	Timeout   Duration
}

func loadStatsNBA() StatsNBAConfig {
	return StatsNBAConfig{
		BaseURL:   envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		UserAgent: envOrDefault(envStatsUserAgent, ""),
		Referer:   envOrDefault(envStatsReferer, ""),
		Timeout:   durationEnvOrDefault(envStatsTimeout, defaultStatsTimeout),
	}
}
