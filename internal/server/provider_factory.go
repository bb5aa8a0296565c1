package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-stats-service/internal/config"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// providerFactory assembles the fetcher with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.Fetcher {
	base := selectProvider(cfg, f.logger)
	return providers.NewInstrumentedFetcher(base, normalizeProviderName(cfg.Provider, base), f.metrics, f.logger)
}

// NewFetcher builds the configured upstream fetcher with instrumentation, for
// callers that use the player service without the HTTP server.
func NewFetcher(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.Fetcher {
	return newProviderFactory(logger, recorder).build(cfg)
}
