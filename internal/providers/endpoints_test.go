package providers

import "testing"

func TestRosterEndpoint(t *testing.T) {
	ep := RosterEndpoint("2024-25")
	if ep.Resource != ResourceRoster {
		t.Fatalf("unexpected resource %s", ep.Resource)
	}
	if ep.Param("Season") != "2024-25" || ep.Param("IsOnlyCurrentSeason") != "0" || ep.Param("LeagueID") != "00" {
		t.Fatalf("unexpected params %v", ep.Params)
	}
}

func TestProfileEndpoint(t *testing.T) {
	ep := ProfileEndpoint(2544)
	if ep.Resource != ResourceProfile || ep.Param("PlayerID") != "2544" {
		t.Fatalf("unexpected endpoint %+v", ep)
	}
}

func TestDashboardEndpointDefaults(t *testing.T) {
	ep := DashboardEndpoint("2024-25", 2544, MeasureBase, nil)
	if ep.Resource != ResourceDashboard {
		t.Fatalf("unexpected resource %s", ep.Resource)
	}

	want := map[string]string{
		"Season":         "2024-25",
		"SeasonType":     "Regular Season",
		"LeagueID":       "00",
		"PlayerID":       "2544",
		"MeasureType":    "Base",
		"PerMode":        "PerGame",
		"PlusMinus":      "N",
		"PaceAdjust":     "N",
		"Rank":           "N",
		"Month":          "0",
		"OpponentTeamID": "0",
		"Period":         "0",
		"LastNGames":     "0",
	}
	for k, v := range want {
		if got := ep.Param(k); got != v {
			t.Fatalf("param %s: expected %q, got %q", k, v, got)
		}
	}
	for _, k := range []string{"Outcome", "Location", "SeasonSegment", "DateFrom", "DateTo", "VsConference", "VsDivision", "GameSegment"} {
		if _, ok := ep.Params[k]; !ok {
			t.Fatalf("expected empty param %s to be sent", k)
		}
	}
	if len(ep.Params) != 21 {
		t.Fatalf("expected 21 params, got %d", len(ep.Params))
	}
}

func TestDashboardEndpointOverrides(t *testing.T) {
	ep := DashboardEndpoint("2024-25", 2544, MeasureAdvanced, map[string]string{
		"PerMode":     "Totals",
		"Season":      "2012-13",
		"PlayerID":    "1",
		"MeasureType": "Base",
	})
	if ep.Param("PerMode") != "Totals" || ep.Param("Season") != "2012-13" {
		t.Fatalf("expected overrides applied, got %v", ep.Params)
	}
	if ep.Param("PlayerID") != "2544" || ep.Param("MeasureType") != "Advanced" {
		t.Fatalf("expected player and measure to be fixed, got %v", ep.Params)
	}
}

func TestIsDashboardParam(t *testing.T) {
	if !IsDashboardParam("PerMode") || !IsDashboardParam("Season") {
		t.Fatalf("expected known params")
	}
	if IsDashboardParam("basic") {
		t.Fatalf("expected unknown param to be rejected")
	}
}
