package roster

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-stats-service/internal/normalize"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/store"
)

const flightKey = "roster"

// SeasonSource yields the season label the roster is requested for.
type SeasonSource interface {
	Current() string
}

// Store holds the roster snapshot once loaded.
type Store interface {
	ListPlayers() []players.Player
	GetPlayer(id int) (players.Player, bool)
	SetPlayers(roster []players.Player)
	Loaded() bool
}

// Cache lazily loads the full roster once per process. Concurrent first
// callers share a single upstream fetch; a failed fetch is not remembered.
type Cache struct {
	fetcher providers.Fetcher
	seasons SeasonSource
	store   Store
	logger  *slog.Logger
	metrics *metrics.Recorder
	group   singleflight.Group
}

// NewCache builds a Cache backed by an in-memory store.
func NewCache(fetcher providers.Fetcher, seasons SeasonSource, logger *slog.Logger, recorder *metrics.Recorder) *Cache {
	return NewCacheWithStore(fetcher, seasons, store.NewMemoryStore(), logger, recorder)
}

// NewCacheWithStore builds a Cache over a caller-supplied store.
func NewCacheWithStore(fetcher providers.Fetcher, seasons SeasonSource, st Store, logger *slog.Logger, recorder *metrics.Recorder) *Cache {
	if st == nil {
		st = store.NewMemoryStore()
	}
	return &Cache{
		fetcher: fetcher,
		seasons: seasons,
		store:   st,
		logger:  logger,
		metrics: recorder,
	}
}

// Loaded reports whether the roster snapshot is available.
func (c *Cache) Loaded() bool {
	return c.store.Loaded()
}

// List returns a copy of the roster in upstream order, optionally only active players.
func (c *Cache) List(ctx context.Context, onlyActive bool) ([]players.Player, error) {
	if err := c.Load(ctx); err != nil {
		return nil, err
	}
	roster := c.store.ListPlayers()
	if onlyActive {
		return players.FilterActive(roster), nil
	}
	return roster, nil
}

// Player looks a player up by id, loading the roster first if needed.
func (c *Cache) Player(ctx context.Context, id int) (players.Player, bool, error) {
	if err := c.Load(ctx); err != nil {
		return players.Player{}, false, err
	}
	p, ok := c.store.GetPlayer(id)
	return p, ok, nil
}

// Load ensures the roster is populated. Callers that arrive while a load is
// in flight wait for it; a caller whose ctx ends returns early without
// cancelling the shared fetch.
func (c *Cache) Load(ctx context.Context) error {
	if c.store.Loaded() {
		return nil
	}
	ch := c.group.DoChan(flightKey, func() (any, error) {
		return nil, c.load(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		return res.Err
	}
}

func (c *Cache) load(ctx context.Context) error {
	if c.store.Loaded() {
		return nil
	}
	season := c.seasons.Current()
	start := time.Now()

	roster, err := c.fetch(ctx, season)
	c.metrics.RecordRosterLoad(time.Since(start), err)
	logger := logging.FromContext(ctx, c.logger)
	if err != nil {
		logging.Error(logger, "roster load failed", err, logging.FieldSeason, season)
		return err
	}

	c.store.SetPlayers(roster)
	logging.Info(logger, "roster loaded",
		logging.FieldSeason, season,
		logging.FieldCount, len(roster),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (c *Cache) fetch(ctx context.Context, season string) ([]players.Player, error) {
	if c.fetcher == nil {
		return nil, providers.WrapFetchError(providers.ResourceRoster, providers.ErrProviderUnavailable)
	}
	resp, err := c.fetcher.FetchJSON(ctx, providers.RosterEndpoint(season))
	if err != nil {
		return nil, providers.WrapFetchError(providers.ResourceRoster, err)
	}
	return normalize.Roster(resp)
}
