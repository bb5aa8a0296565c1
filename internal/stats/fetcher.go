package stats

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	domainstats "github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/normalize"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/resolver"
)

// Roster is the part of the roster cache the fetcher depends on.
type Roster interface {
	Load(ctx context.Context) error
}

// PlayerResolver resolves a query to one roster entry.
type PlayerResolver interface {
	Resolve(ctx context.Context, q resolver.Query, includeInactive bool) (players.Player, bool, error)
}

// SeasonSource yields the default season for dashboard requests.
type SeasonSource interface {
	Current() string
}

// Options selects which stat lines to return. Params override dashboard
// query defaults such as Season or PerMode.
type Options struct {
	Basic    domainstats.Selection
	Advanced domainstats.Selection
	Params   map[string]string
}

// DefaultOptions returns the full basic line and no advanced line.
func DefaultOptions() Options {
	return Options{Basic: domainstats.All(), Advanced: domainstats.None()}
}

// Fetcher gathers a player's profile and dashboards and merges them.
type Fetcher struct {
	fetcher  providers.Fetcher
	roster   Roster
	resolver PlayerResolver
	seasons  SeasonSource
	logger   *slog.Logger
}

// New builds a stats Fetcher.
func New(fetcher providers.Fetcher, roster Roster, res PlayerResolver, seasons SeasonSource, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		fetcher:  fetcher,
		roster:   roster,
		resolver: res,
		seasons:  seasons,
		logger:   logger,
	}
}

// GetStats resolves q (retired players included) and returns its profile with
// the selected stat lines. A false result with a nil error means no player
// matched. Any failed upstream request fails the whole call.
func (f *Fetcher) GetStats(ctx context.Context, q resolver.Query, opts Options) (domainstats.Result, bool, error) {
	if err := f.roster.Load(ctx); err != nil {
		return domainstats.Result{}, false, err
	}
	p, ok, err := f.resolver.Resolve(ctx, q, true)
	if err != nil || !ok {
		return domainstats.Result{}, false, err
	}

	endpoints := f.endpoints(p.ID, opts)
	start := time.Now()
	responses, err := f.fetchAll(ctx, endpoints)
	if err != nil {
		return domainstats.Result{}, false, err
	}

	result, err := normalize.Merge(responses, opts.Basic, opts.Advanced)
	if err != nil {
		return domainstats.Result{}, false, err
	}

	logger := logging.FromContext(ctx, f.logger)
	if logger != nil {
		logger.Debug("stats fetched",
			logging.FieldPlayerID, p.ID,
			logging.FieldCount, len(endpoints),
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
		)
	}
	return result, true, nil
}

func (f *Fetcher) endpoints(playerID int, opts Options) []providers.Endpoint {
	season := ""
	if f.seasons != nil {
		season = f.seasons.Current()
	}
	out := []providers.Endpoint{providers.ProfileEndpoint(playerID)}
	if opts.Basic.Enabled() {
		out = append(out, providers.DashboardEndpoint(season, playerID, providers.MeasureBase, opts.Params))
	}
	if opts.Advanced.Enabled() {
		out = append(out, providers.DashboardEndpoint(season, playerID, providers.MeasureAdvanced, opts.Params))
	}
	return out
}

func (f *Fetcher) fetchAll(ctx context.Context, endpoints []providers.Endpoint) ([]providers.Response, error) {
	if f.fetcher == nil {
		return nil, providers.WrapFetchError(providers.ResourceProfile, providers.ErrProviderUnavailable)
	}
	responses := make([]providers.Response, len(endpoints))
	g, gctx := errgroup.WithContext(ctx)
	for i, ep := range endpoints {
		i, ep := i, ep
		g.Go(func() error {
			resp, err := f.fetcher.FetchJSON(gctx, ep)
			if err != nil {
				return providers.WrapFetchError(ep.Resource, err)
			}
			responses[i] = tagResponse(resp, ep)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return responses, nil
}

// tagResponse fills in the resource and the measure/season parameters from
// the request when upstream did not echo them. Parameters are copied so
// shared responses are never written.
func tagResponse(resp providers.Response, ep providers.Endpoint) providers.Response {
	if resp.Resource == "" {
		resp.Resource = ep.Resource
	}
	params := make(map[string]any, len(resp.Parameters)+2)
	for k, v := range resp.Parameters {
		params[k] = v
	}
	for _, key := range []string{"MeasureType", "Season"} {
		if _, ok := params[key]; !ok && ep.Param(key) != "" {
			params[key] = ep.Param(key)
		}
	}
	resp.Parameters = params
	return resp
}
