package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
)

// instrumentedFetcher wraps a Fetcher with per-resource metrics and logging.
type instrumentedFetcher struct {
	next     Fetcher
	name     string
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewInstrumentedFetcher records attempts, failures, latency, and throttling for every call to next.
func NewInstrumentedFetcher(next Fetcher, name string, recorder *metrics.Recorder, logger *slog.Logger) Fetcher {
	if name == "" {
		name = "provider"
	}
	return &instrumentedFetcher{
		next:     next,
		name:     name,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

func (f *instrumentedFetcher) FetchJSON(ctx context.Context, endpoint Endpoint) (Response, error) {
	if f.next == nil {
		logWithProvider(ctx, f.logger, slog.LevelWarn, f.name, "provider unavailable")
		return Response{}, &FetchError{Resource: endpoint.Resource, Err: ErrProviderUnavailable}
	}

	start := f.now()
	resp, err := f.next.FetchJSON(ctx, endpoint)
	elapsed := f.now().Sub(start)

	f.recorder.RecordUpstreamAttempt(endpoint.Resource, elapsed, err)
	if err != nil {
		if fe, ok := AsFetchError(err); ok && fe.RateLimited() {
			f.recorder.RecordRateLimit(endpoint.Resource)
		}
		logWithProvider(ctx, f.logger, slog.LevelWarn, f.name, "upstream fetch failed",
			slog.String(logging.FieldResource, endpoint.Resource),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		)
		return Response{}, err
	}

	logWithProvider(ctx, f.logger, slog.LevelDebug, f.name, "upstream fetch complete",
		slog.String(logging.FieldResource, endpoint.Resource),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return resp, nil
}
