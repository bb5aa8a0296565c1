package normalize

import (
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

// OverallDashboard is the result set holding the unsplit season aggregate.
const OverallDashboard = "OverallPlayerDashboard"

// DashboardKind tells basic and advanced dashboards apart.
type DashboardKind int

const (
	DashboardBasic DashboardKind = iota
	DashboardAdvanced
)

func (k DashboardKind) String() string {
	if k == DashboardAdvanced {
		return "advanced"
	}
	return "basic"
}

var basicHeaderNames = map[string]string{
	"GROUP_VALUE": stats.CodeSeason,
	"GP":          "GP",
	"W":           "W",
	"L":           "L",
	"MIN":         "MIN",
	"FGM":         "FGM",
	"FGA":         "FGA",
	"FG3M":        "FG3M",
	"FG3A":        "FG3A",
	"FTM":         "FTM",
	"FTA":         "FTA",
	"OREB":        "OREB",
	"DREB":        "DREB",
	"REB":         "REB",
	"AST":         "AST",
	"TOV":         "TOV",
	"STL":         "STL",
	"BLK":         "BLK",
	"PF":          "PF",
	"PTS":         "PTS",
	"PLUS_MINUS":  "PM",
}

var advancedHeaderNames = map[string]string{
	"GROUP_VALUE": stats.CodeSeason,
	"GP":          "GP",
	"W":           "W",
	"L":           "L",
	"MIN":         "MIN",
	"OFF_RATING":  "ORtg",
	"DEF_RATING":  "DRtg",
	"EFG_PCT":     "eFG",
	"TS_PCT":      "TS",
	"USG_PCT":     "USG",
	"AST_TO":      "AstTO",
	"AST_PCT":     "AstPct",
	"OREB_PCT":    "ORebPct",
	"DREB_PCT":    "DRebPct",
	"REB_PCT":     "RebPct",
}

// Dashboard shapes the overall row of a general-splits dashboard. Upstream
// sends one row per split and the unsplit aggregate last, so only the final
// row is kept. A player without games in the season yields a season-only line.
func Dashboard(resp providers.Response) (DashboardKind, stats.Line, error) {
	var (
		kind  DashboardKind
		names map[string]string
	)
	switch measure := resp.Param("MeasureType"); measure {
	case providers.MeasureBase, "":
		kind, names = DashboardBasic, basicHeaderNames
	case providers.MeasureAdvanced:
		kind, names = DashboardAdvanced, advancedHeaderNames
	default:
		return kind, nil, providers.Malformed(providers.ResourceDashboard, "unsupported measure type %q", measure)
	}

	rs, ok := resp.ResultSetByName(OverallDashboard)
	if !ok {
		return kind, nil, providers.Malformed(providers.ResourceDashboard, "missing %s result set", OverallDashboard)
	}

	line := stats.Line{}
	if n := len(rs.RowSet); n > 0 {
		line = Zip(renameHeaders(rs.Headers, names), rs.RowSet[n-1])
	}
	if asString(line[stats.CodeSeason]) == "" {
		line[stats.CodeSeason] = resp.Param("Season")
	}
	return kind, line, nil
}
