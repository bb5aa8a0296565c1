package normalize

import (
	"errors"
	"testing"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/teststubs"
)

func TestFilterSubset(t *testing.T) {
	line := stats.Line{stats.CodeSeason: "2013-14", "PTS": 27.1, "AST": 6.3}

	if got, ok := FilterSubset(line, stats.None()); ok || got != nil {
		t.Fatalf("expected none to omit line, got %v", got)
	}
	if got, ok := FilterSubset(line, stats.All()); !ok || len(got) != 3 {
		t.Fatalf("expected all to keep line, got %v", got)
	}

	got, ok := FilterSubset(line, stats.Subset("PTS"))
	if !ok || len(got) != 2 || got["PTS"] != 27.1 || got[stats.CodeSeason] != "2013-14" {
		t.Fatalf("unexpected subset %v", got)
	}
	if len(line) != 3 {
		t.Fatalf("expected input line untouched, got %v", line)
	}
}

func TestMergeDefaultSelections(t *testing.T) {
	responses := []providers.Response{
		teststubs.ProfileResponse(),
		teststubs.DashboardResponse(providers.MeasureBase),
	}
	got, err := Merge(responses, stats.All(), stats.None())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.Profile.ID != 2544 || got.Basic["PTS"] != 27.1 || got.Advanced != nil {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestMergeSubsetsBothLines(t *testing.T) {
	responses := []providers.Response{
		teststubs.DashboardResponse(providers.MeasureAdvanced),
		teststubs.ProfileResponse(),
		teststubs.DashboardResponse(providers.MeasureBase),
	}
	got, err := Merge(responses, stats.Subset("PTS"), stats.Subset("TS", "USG"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(got.Basic) != 2 || len(got.Advanced) != 3 {
		t.Fatalf("unexpected subsets basic=%v advanced=%v", got.Basic, got.Advanced)
	}
}

func TestMergeErrors(t *testing.T) {
	if _, err := Merge([]providers.Response{teststubs.DashboardResponse(providers.MeasureBase)}, stats.All(), stats.None()); !errors.Is(err, providers.ErrMalformedPayload) {
		t.Fatalf("expected missing profile to be malformed, got %v", err)
	}
	if _, err := Merge([]providers.Response{teststubs.ProfileResponse(), teststubs.RosterResponse()}, stats.All(), stats.None()); !errors.Is(err, providers.ErrMalformedPayload) {
		t.Fatalf("expected unexpected resource to be malformed, got %v", err)
	}
}
