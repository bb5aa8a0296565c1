package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	domainstats "github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/resolver"
	"github.com/preston-bernstein/nba-stats-service/internal/roster"
	"github.com/preston-bernstein/nba-stats-service/internal/teststubs"
)

func newTestFetcher(stub *teststubs.StubFetcher) *Fetcher {
	seasons := teststubs.StaticSeason("2013-14")
	cache := roster.NewCache(stub, seasons, nil, nil)
	return New(stub, cache, resolver.New(cache, nil), seasons, nil)
}

func TestGetStatsDefaults(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	f := newTestFetcher(stub)

	got, ok, err := f.GetStats(context.Background(), resolver.ByName("LeBron James"), DefaultOptions())
	if err != nil || !ok {
		t.Fatalf("expected stats, got %v %v", ok, err)
	}
	if got.Profile.ID != 2544 || got.Basic["PTS"] != 27.1 {
		t.Fatalf("unexpected result %+v", got)
	}
	if got.Advanced != nil {
		t.Fatalf("expected advanced line omitted by default")
	}
	if n := stub.CallsFor(providers.ResourceDashboard); n != 1 {
		t.Fatalf("expected one dashboard request, got %d", n)
	}
}

func TestGetStatsBasicSubsetByID(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	f := newTestFetcher(stub)

	opts := Options{Basic: domainstats.Subset("PTS"), Advanced: domainstats.None()}
	got, ok, err := f.GetStats(context.Background(), resolver.ByID(2544), opts)
	if err != nil || !ok {
		t.Fatalf("expected stats, got %v %v", ok, err)
	}
	if len(got.Basic) != 2 || got.Basic["PTS"] != 27.1 || got.Basic[domainstats.CodeSeason] != "2013-14" {
		t.Fatalf("expected {season, PTS}, got %v", got.Basic)
	}
	if got.Advanced != nil {
		t.Fatalf("expected advanced absent")
	}
}

func TestGetStatsAdvancedFullLine(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	f := newTestFetcher(stub)

	opts := Options{Basic: domainstats.None(), Advanced: domainstats.All()}
	got, ok, err := f.GetStats(context.Background(), resolver.ByID(2544), opts)
	if err != nil || !ok {
		t.Fatalf("expected stats, got %v %v", ok, err)
	}
	if got.Basic != nil {
		t.Fatalf("expected basic omitted")
	}
	if len(got.Advanced) != len(domainstats.AdvancedCodes)+1 {
		t.Fatalf("expected 14 advanced codes plus season, got %v", got.Advanced)
	}
}

func TestGetStatsIncludesRetiredPlayers(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	f := newTestFetcher(stub)

	_, ok, err := f.GetStats(context.Background(), resolver.ByName("Olajuwon, Hakeem"), DefaultOptions())
	if err != nil || !ok {
		t.Fatalf("expected retired player to resolve, got %v %v", ok, err)
	}
	for _, ep := range stub.Endpoints() {
		if ep.Resource == providers.ResourceProfile && ep.Param("PlayerID") != "165" {
			t.Fatalf("expected profile request for 165, got %v", ep.Params)
		}
	}
}

func TestGetStatsNotFound(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	f := newTestFetcher(stub)

	_, ok, err := f.GetStats(context.Background(), resolver.ByName("zzz qqq"), DefaultOptions())
	if ok || err != nil {
		t.Fatalf("expected not found, got %v %v", ok, err)
	}
	if stub.CallsFor(providers.ResourceProfile) != 0 {
		t.Fatalf("expected no stats requests for unknown player")
	}
}

func TestGetStatsFailsWholeCall(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	stub.SetErr(teststubs.Key(providers.ResourceDashboard, providers.MeasureAdvanced), &providers.FetchError{Resource: providers.ResourceDashboard, StatusCode: 500})
	f := newTestFetcher(stub)

	opts := Options{Basic: domainstats.All(), Advanced: domainstats.All()}
	got, ok, err := f.GetStats(context.Background(), resolver.ByID(2544), opts)
	if err == nil || ok {
		t.Fatalf("expected failure, got %v %v", ok, err)
	}
	if got.Basic != nil || got.Profile.ID != 0 {
		t.Fatalf("expected no partial result, got %+v", got)
	}
	if fe, ok := providers.AsFetchError(err); !ok || fe.StatusCode != 500 {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestGetStatsFetchesProfileAndDashboardsConcurrently(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	f := newTestFetcher(stub)
	if err := f.roster.Load(context.Background()); err != nil {
		t.Fatalf("roster load: %v", err)
	}
	stub.Calls.Store(0)
	stub.Release = make(chan struct{})

	type outcome struct {
		ok  bool
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		opts := Options{Basic: domainstats.All(), Advanced: domainstats.All()}
		_, ok, err := f.GetStats(context.Background(), resolver.ByID(2544), opts)
		done <- outcome{ok: ok, err: err}
	}()

	deadline := time.After(time.Second)
	for stub.Calls.Load() < 3 {
		select {
		case <-deadline:
			close(stub.Release)
			t.Fatalf("expected 3 requests in flight at once, got %d", stub.Calls.Load())
		case <-time.After(time.Millisecond):
		}
	}
	close(stub.Release)

	select {
	case res := <-done:
		if res.err != nil || !res.ok {
			t.Fatalf("expected stats, got %v %v", res.ok, res.err)
		}
	case <-time.After(time.Second):
		t.Fatal("GetStats did not return after release")
	}
}

func TestGetStatsRosterFailure(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	stub.SetErr(providers.ResourceRoster, errors.New("dial tcp: refused"))
	f := newTestFetcher(stub)

	_, _, err := f.GetStats(context.Background(), resolver.ByPlayer(teststubs.LeBron()), DefaultOptions())
	if _, ok := providers.AsFetchError(err); !ok {
		t.Fatalf("expected roster fetch error, got %v", err)
	}
}

func TestGetStatsParamOverrides(t *testing.T) {
	stub := teststubs.NewStubFetcher()
	f := newTestFetcher(stub)

	opts := DefaultOptions()
	opts.Params = map[string]string{"Season": "2012-13", "PerMode": "Totals", "MeasureType": "Scoring"}
	if _, _, err := f.GetStats(context.Background(), resolver.ByID(2544), opts); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	for _, ep := range stub.Endpoints() {
		if ep.Resource != providers.ResourceDashboard {
			continue
		}
		if ep.Param("Season") != "2012-13" || ep.Param("PerMode") != "Totals" || ep.Param("MeasureType") != providers.MeasureBase {
			t.Fatalf("unexpected dashboard params %v", ep.Params)
		}
	}
}

func TestTagResponseFillsMissingFields(t *testing.T) {
	ep := providers.DashboardEndpoint("2013-14", 2544, providers.MeasureAdvanced, nil)
	shared := map[string]any{"PerMode": "PerGame"}
	got := tagResponse(providers.Response{Parameters: shared}, ep)

	if got.Resource != providers.ResourceDashboard || got.Param("MeasureType") != providers.MeasureAdvanced || got.Param("Season") != "2013-14" {
		t.Fatalf("unexpected tagged response %+v", got)
	}
	if len(shared) != 1 {
		t.Fatalf("expected input parameters untouched")
	}
}
