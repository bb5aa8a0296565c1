package players

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	domainstats "github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/resolver"
	"github.com/preston-bernstein/nba-stats-service/internal/roster"
	"github.com/preston-bernstein/nba-stats-service/internal/stats"
)

// Service exposes the list, find and stats operations over one upstream collaborator.
type Service struct {
	roster   *roster.Cache
	resolver *resolver.Resolver
	stats    *stats.Fetcher
}

// NewService wires the roster cache, resolver and stats fetcher around fetcher.
func NewService(fetcher providers.Fetcher, seasons roster.SeasonSource, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	cache := roster.NewCache(fetcher, seasons, logger, recorder)
	res := resolver.New(cache, logger)
	return &Service{
		roster:   cache,
		resolver: res,
		stats:    stats.New(fetcher, cache, res, seasons, logger),
	}
}

// List returns the roster, optionally only active players.
func (s *Service) List(ctx context.Context, onlyActive bool) ([]players.Player, error) {
	return s.roster.List(ctx, onlyActive)
}

// Find resolves a single player. A false result with a nil error means no match.
func (s *Service) Find(ctx context.Context, q resolver.Query, includeInactive bool) (players.Player, bool, error) {
	return s.resolver.Resolve(ctx, q, includeInactive)
}

// Stats returns a player's profile and selected stat lines.
func (s *Service) Stats(ctx context.Context, q resolver.Query, opts stats.Options) (domainstats.Result, bool, error) {
	return s.stats.GetStats(ctx, q, opts)
}

// Warm loads the roster ahead of the first request.
func (s *Service) Warm(ctx context.Context) error {
	return s.roster.Load(ctx)
}

// Ready reports whether the roster has been loaded.
func (s *Service) Ready() bool {
	return s.roster.Loaded()
}
