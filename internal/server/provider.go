package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-stats-service/internal/config"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-stats-service/internal/providers/statsnba"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.Fetcher {
	switch cfg.Provider {
	case config.ProviderStatsNBA, "":
		return statsnba.NewClient(statsnba.Config{
			BaseURL:   cfg.StatsNBA.BaseURL,
			UserAgent: cfg.StatsNBA.UserAgent,
			Referer:   cfg.StatsNBA.Referer,
			Timeout:   cfg.StatsNBA.Timeout,
		})
	case config.ProviderFixture:
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", logging.FieldProvider, cfg.Provider)
		return fixture.New()
	}
}
