package normalize

import (
	"errors"
	"testing"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
	"github.com/preston-bernstein/nba-stats-service/internal/teststubs"
)

func TestDashboardBasicKeepsLastOverallRow(t *testing.T) {
	resp := teststubs.DashboardResponse(providers.MeasureBase)
	decoy := append([]any(nil), teststubs.BaseOverallRow...)
	decoy[1] = "Home"
	decoy[26] = 99.9
	resp.ResultSets[1].RowSet = [][]any{decoy, teststubs.BaseOverallRow}

	kind, line, err := Dashboard(resp)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if kind != DashboardBasic {
		t.Fatalf("expected basic, got %s", kind)
	}
	if line["PTS"] != 27.1 || line["PM"] != 6.3 || line[stats.CodeSeason] != "2013-14" {
		t.Fatalf("unexpected line %v", line)
	}
	if len(line) != len(stats.BasicCodes)+1 {
		t.Fatalf("expected %d keys, got %d: %v", len(stats.BasicCodes)+1, len(line), line)
	}
	for _, dropped := range []string{"FG_PCT", "W_PCT", "GROUP_SET", "PLUS_MINUS"} {
		if _, ok := line[dropped]; ok {
			t.Fatalf("expected %s to be dropped", dropped)
		}
	}
}

func TestDashboardAdvancedCodes(t *testing.T) {
	kind, line, err := Dashboard(teststubs.DashboardResponse(providers.MeasureAdvanced))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if kind != DashboardAdvanced {
		t.Fatalf("expected advanced, got %s", kind)
	}
	if len(line) != len(stats.AdvancedCodes)+1 {
		t.Fatalf("expected %d keys, got %v", len(stats.AdvancedCodes)+1, line)
	}
	for _, code := range stats.AdvancedCodes {
		if _, ok := line[code]; !ok {
			t.Fatalf("missing advanced code %s", code)
		}
	}
	if line["ORtg"] != 112.5 || line["TS"] != 0.649 {
		t.Fatalf("unexpected advanced values %v", line)
	}
}

func TestDashboardEmptyRowsFallsBackToSeasonParam(t *testing.T) {
	resp := teststubs.DashboardResponse(providers.MeasureBase)
	resp.ResultSets[1].RowSet = nil

	_, line, err := Dashboard(resp)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(line) != 1 || line[stats.CodeSeason] != "2013-14" {
		t.Fatalf("expected season-only line, got %v", line)
	}
}

func TestDashboardMalformed(t *testing.T) {
	resp := teststubs.DashboardResponse(providers.MeasureBase)
	resp.Parameters["MeasureType"] = "Scoring"
	if _, _, err := Dashboard(resp); !errors.Is(err, providers.ErrMalformedPayload) {
		t.Fatalf("expected malformed for unknown measure, got %v", err)
	}

	resp = teststubs.DashboardResponse(providers.MeasureBase)
	resp.ResultSets = resp.ResultSets[:1]
	if _, _, err := Dashboard(resp); !errors.Is(err, providers.ErrMalformedPayload) {
		t.Fatalf("expected malformed for missing overall set, got %v", err)
	}
}
