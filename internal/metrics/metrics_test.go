package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksUpstreamAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordUpstreamAttempt("commonallplayers", 10*time.Millisecond, nil)
	rec.RecordUpstreamAttempt("commonallplayers", 15*time.Millisecond, errors.New("boom"))

	if got := rec.UpstreamCalls("commonallplayers"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.UpstreamErrors("commonallplayers"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("commonallplayers"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("commonallplayers")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if other := rec.Snapshot("commonplayerinfo"); other.Calls != 0 {
		t.Fatalf("expected empty snapshot for unseen resource, got %+v", other)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("commonplayerinfo")
	rec.RecordRateLimit("commonplayerinfo")

	if got := rec.RateLimitHits("commonplayerinfo"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
}

func TestRecorderTracksRosterLoads(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRosterLoad(time.Millisecond, errors.New("boom"))
	rec.RecordRosterLoad(time.Millisecond, nil)

	total, failed := rec.RosterLoads()
	if total != 2 || failed != 1 {
		t.Fatalf("expected 2 loads with 1 failure, got %d/%d", total, failed)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordUpstreamAttempt("x", time.Millisecond, nil)
	rec.RecordRateLimit("x")
	rec.RecordRosterLoad(time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	if rec.UpstreamCalls("x") != 0 {
		t.Fatalf("expected zero calls from nil recorder")
	}
	if total, _ := rec.RosterLoads(); total != 0 {
		t.Fatalf("expected zero roster loads from nil recorder")
	}
}

func TestRecorderConcurrentUse(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.RecordUpstreamAttempt("commonallplayers", time.Millisecond, nil)
		}()
	}
	wg.Wait()

	if got := rec.UpstreamCalls("commonallplayers"); got != 20 {
		t.Fatalf("expected 20 calls, got %d", got)
	}
}
