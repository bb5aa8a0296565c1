package providers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-stats-service/internal/testutil"
)

func TestInstrumentedFetcherRecordsSuccess(t *testing.T) {
	rec := metrics.NewRecorder()
	inner := FetcherFunc(func(ctx context.Context, endpoint Endpoint) (Response, error) {
		return Response{Resource: endpoint.Resource}, nil
	})
	f := NewInstrumentedFetcher(inner, "fixture", rec, nil)

	resp, err := f.FetchJSON(context.Background(), RosterEndpoint("2024-25"))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if resp.Resource != ResourceRoster {
		t.Fatalf("unexpected response %+v", resp)
	}
	if got := rec.UpstreamCalls(ResourceRoster); got != 1 {
		t.Fatalf("expected 1 call, got %d", got)
	}
	if got := rec.UpstreamErrors(ResourceRoster); got != 0 {
		t.Fatalf("expected no errors, got %d", got)
	}
}

func TestInstrumentedFetcherRecordsFailuresAndRateLimits(t *testing.T) {
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	inner := FetcherFunc(func(ctx context.Context, endpoint Endpoint) (Response, error) {
		return Response{}, &FetchError{Resource: endpoint.Resource, StatusCode: http.StatusTooManyRequests}
	})
	f := NewInstrumentedFetcher(inner, "statsnba", rec, logger)

	_, err := f.FetchJSON(context.Background(), ProfileEndpoint(2544))
	if err == nil {
		t.Fatal("expected error")
	}
	if got := rec.UpstreamErrors(ResourceProfile); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.RateLimitHits(ResourceProfile); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", got)
	}
	if !strings.Contains(buf.String(), "provider=statsnba") {
		t.Fatalf("expected provider field in logs, got %q", buf.String())
	}
}

func TestInstrumentedFetcherNilInner(t *testing.T) {
	f := NewInstrumentedFetcher(nil, "", nil, nil)

	_, err := f.FetchJSON(context.Background(), RosterEndpoint("2024-25"))
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if fe, ok := AsFetchError(err); !ok || fe.Resource != ResourceRoster {
		t.Fatalf("expected fetch error for roster, got %v", err)
	}
}
